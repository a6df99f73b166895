//go:build unit

package middleware_test

import (
	"testing"

	"weekboard/internal/handler/middleware"
	"weekboard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("accepts the default config", func(t *testing.T) {
		cfg := config.CORSConfig{
			AllowOrigins: []string{"http://localhost:5000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}

		var handler any
		assert.NotPanics(t, func() {
			handler = middleware.NewCORSMiddleware(cfg)
		})
		assert.NotNil(t, handler)
	})

	t.Run("accepts the test config", func(t *testing.T) {
		// gin-contrib/cors panics on a config with no origins, so the
		// canned test config must always carry a usable CORS section.
		cfg := config.NewTestConfig()
		require.NotEmpty(t, cfg.CORS.AllowOrigins)

		assert.NotPanics(t, func() {
			middleware.NewCORSMiddleware(cfg.CORS)
		})
	})
}
