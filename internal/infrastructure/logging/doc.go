// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Module cores receive a *zap.Logger and name it after themselves, so every
// line carries the component that wrote it.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	defer logger.Close()
//	logger.Info("Server starting", zap.String("port", "8000"))
package logging
