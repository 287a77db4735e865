// Package http exposes the bridge modules over a gin router.
//
// A web view or test client calls POST /modules/:module/:method with a body of
// {"args": {...}} and receives the bridge Result as JSON. Lookup failures map
// to 404, a missing peer capability to 503.
package http
