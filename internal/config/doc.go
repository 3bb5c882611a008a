// Package config manages application configuration for the Reserve API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - RateLimitConfig: Request rate limiting settings
//   - RetentionConfig: Reservation retention sweeper settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT               - HTTP server port (default: 8080)
//	SERVER_ENV                - development, production, or test
//	CORS_ALLOWED_ORIGINS      - Comma-separated allowed origins
//	DB_HOST / DB_PORT         - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE - SurrealDB namespace and database
//	DB_USER / DB_PASSWORD     - Database credentials
//	RATE_LIMIT_RATE           - Requests per window (default: 100)
//	RETENTION_KEEP_FOR        - How long ended reservations are kept
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
