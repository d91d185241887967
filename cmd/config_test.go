package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with required secret", func(t *testing.T) {
		t.Setenv("LAUNDRY_JWT_SECRET", "s3cret")

		cfg, err := loadConfig(nil, true)

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 3, cfg.Orders.NumberAttempts)
		assert.Equal(t, 72*time.Hour, cfg.Orders.Turnaround())
		assert.Equal(t, 30*24*time.Hour, cfg.Notifications.Retention)
		assert.Equal(t, "0 0 3 * * *", cfg.Notifications.PurgeSchedule)
		assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=laundry sslmode=disable", cfg.DB.DSN())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LAUNDRY_JWT_SECRET", "s3cret")
		t.Setenv("LAUNDRY_HTTP_PORT", "9090")
		t.Setenv("LAUNDRY_DB_HOST", "db")
		t.Setenv("LAUNDRY_CART_SAVE_ATTEMPTS", "5")
		t.Setenv("LAUNDRY_NOTIFICATIONS_RETENTION", "48h")

		cfg, err := loadConfig(nil, true)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "db", cfg.DB.Host)
		assert.Equal(t, 5, cfg.Cart.SaveAttempts)
		assert.Equal(t, 48*time.Hour, cfg.Notifications.Retention)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jwt_secret: from-file\nredis:\n  addr: cache:6379\n"), 0o600))

		cfg, err := loadConfig([]string{path}, true)

		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.JWTSecret)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("LAUNDRY_JWT_SECRET", "")

		_, err := loadConfig(nil, true)

		require.ErrorContains(t, err, "jwt secret is required")
	})
}
