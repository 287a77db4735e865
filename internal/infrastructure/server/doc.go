// Package server is the composition root.
//
// NewServer constructs each capability module exactly once, binds it into the
// interop registry, and refuses to start unless every capability is bound.
// Only after that are the bridge adapters and the HTTP router built.
package server
