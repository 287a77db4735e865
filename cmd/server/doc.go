// Package main is the entry point for the capability interop host.
//
// The server binds every capability module into the process registry,
// validates that nothing is missing, and exposes the bridge modules over HTTP
// so a web view or test client can call them.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server --port 8000
//	./server --dev --storage ./data/storage.json
//	./server capabilities
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
