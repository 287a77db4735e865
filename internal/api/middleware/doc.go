// Package middleware provides HTTP middleware for the host API.
//
// Middleware stack includes:
//   - Recovery: Panic recovery with a JSON 500 and a zap error log
//   - RequestLogger: One structured line per request, tagged with X-Request-ID
//   - CORS: Cross-origin resource sharing for web views
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//   - GlobalRateLimit: One token bucket shared by all clients
//
// Example Usage:
//
//	router.Use(middleware.Recovery(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
