//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"gudlft-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults applied when only required vars are set", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "5000")
		t.Setenv("SESSION_SECRET", "s3cret")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "clubs.json", cfg.Store.ClubsPath)
		assert.Equal(t, "competitions.json", cfg.Store.CompetitionsPath)
		assert.Equal(t, "2006-01-02 15:04:05", cfg.Store.DateLayout)
		assert.Equal(t, 24*time.Hour, cfg.Session.Duration)
		assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowMethods)
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "5000")
		t.Setenv("SESSION_SECRET", "unset-below")
		require.NoError(t, os.Unsetenv("SESSION_SECRET"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("data paths overridable", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "5000")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("CLUBS_DATA_PATH", "/data/clubs.yaml")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "/data/clubs.yaml", cfg.Store.ClubsPath)
	})
}

func TestStoreConfigLocation(t *testing.T) {
	loc, err := config.StoreConfig{TimeZone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = config.StoreConfig{TimeZone: "Nowhere/Atlantis"}.Location()
	assert.Error(t, err)
}
