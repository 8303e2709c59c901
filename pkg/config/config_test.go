package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/pkg/config"
)

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOCK_TTL_SECONDS", "3")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Env)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Lock.TTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_ProductionExigeSecreto(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "khohang", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/khohang?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x/y"
	assert.Equal(t, "postgres://x/y", c.ConnectionString())
}
