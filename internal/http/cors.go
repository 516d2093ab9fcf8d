package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// createCORSMiddleware returns nil when CORS is disabled or no usable origin is configured.
//
// allowOrigins is a comma-separated list. A single "*" allows any origin.
// Entries without an http:// or https:// scheme are dropped with a warning.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, rejected := splitOrigins(allowOrigins)
	for _, origin := range rejected {
		logger.Warn("ignoring CORS origin without http or https scheme", slog.String("origin", origin))
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{"Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        corsMaxAge,
	}
	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	logger.Info("CORS enabled",
		slog.Bool("all_origins", config.AllowAllOrigins),
		slog.Any("origins", config.AllowOrigins))

	return cors.New(config)
}

// splitOrigins splits a comma-separated origin list into accepted and rejected entries.
// A "*" anywhere in the list collapses the accepted set to the wildcard.
func splitOrigins(raw string) (accepted, rejected []string) {
	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimSpace(part)
		switch {
		case origin == "":
			continue
		case origin == "*":
			return []string{"*"}, rejected
		case strings.HasPrefix(origin, "http://"), strings.HasPrefix(origin, "https://"):
			accepted = append(accepted, strings.TrimSuffix(origin, "/"))
		default:
			rejected = append(rejected, origin)
		}
	}
	return accepted, rejected
}
