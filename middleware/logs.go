package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	// Skip logging for specific paths
	SkipPaths []string
}

// DefaultLogConfig returns a default configuration for the logging middleware
func DefaultLogConfig() LogConfig {
	return LogConfig{
		SkipPaths: []string{"/api/notifications"},
	}
}

// RequestLogger logs every request with method, path, status and latency
func RequestLogger() fiber.Handler {
	return RequestLoggerWithConfig(DefaultLogConfig())
}

func RequestLoggerWithConfig(config LogConfig) fiber.Handler {
	skip := map[string]bool{}
	for _, path := range config.SkipPaths {
		skip[path] = true
	}

	return func(c *fiber.Ctx) error {
		if skip[c.Path()] {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		log.Printf("%s %s %d %v", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
