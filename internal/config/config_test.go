package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "HTTP_ADDR", "LOG_LEVEL", "APP_TIMEZONE", "ROSTER_SIZE", "ROSTER_DEFAULT_WEEKS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Roster.MembersPerWeek)
	assert.Equal(t, 4, cfg.Roster.DefaultWeeks)
	assert.Equal(t, 52, cfg.Roster.MaxWeeks)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("ROSTER_SIZE", "4")
	t.Setenv("ROSTER_MAX_WEEKS", "not-a-number")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 4, cfg.Roster.MembersPerWeek)
	assert.Equal(t, 52, cfg.Roster.MaxWeeks, "некорректное значение заменяется дефолтом")
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestRosterConfig_Location(t *testing.T) {
	t.Run("неизвестный пояс - UTC и ошибка", func(t *testing.T) {
		loc, err := RosterConfig{Timezone: "Nowhere/Unknown"}.Location()
		assert.Error(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("пояс по умолчанию доступен без системной tzdata", func(t *testing.T) {
		loc, err := RosterConfig{Timezone: "America/Sao_Paulo"}.Location()
		require.NoError(t, err)
		assert.Equal(t, "America/Sao_Paulo", loc.String())
	})
}
