// Package config provides 12-factor configuration management for the host.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Interop: Capability registry policy
//   - Storage: Optional file persistence
//   - Device: Bundle id, app manifest and os-release location
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - INTEROP_STRICT, STORAGE_PATH
//   - BUNDLE_ID, APP_MANIFEST, OS_RELEASE_PATH
package config
