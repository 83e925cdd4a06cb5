package config

import (
	"bytes"
	"context"
	"testing"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("QUERY_STALE_TIME", "")

	cfg := Load()
	assert.Equal(t, "https://api.gocommuta.com/v1/admin", cfg.API.BaseURL)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 30*time.Second, cfg.Query.StaleTime)
	assert.Equal(t, 72*time.Hour, cfg.Session.TTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:9000/v1/admin/")
	t.Setenv("SESSION_STORE", "Postgres")
	t.Setenv("QUERY_STALE_TIME", "45")
	t.Setenv("QUERY_RENDER_WAIT", "500ms")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	assert.Equal(t, "http://localhost:9000/v1/admin", cfg.API.BaseURL)
	assert.Equal(t, "postgres", cfg.Session.Store)
	assert.Equal(t, 45*time.Second, cfg.Query.StaleTime)
	assert.Equal(t, 500*time.Millisecond, cfg.Query.RenderWait)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, time.Hour, getEnvAsDuration("SESSION_TTL", time.Hour))
}

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable", TimeZone: "UTC"}.DSN()
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestGormLogger_WritesThroughLogrus(t *testing.T) {
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevLevel := std.Out, std.GetLevel()
	std.SetOutput(&buf)
	std.SetLevel(logrus.InfoLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetLevel(prevLevel)
	})

	GormLogger().Warn(context.Background(), "slow session lookup %d", 42)
	assert.Contains(t, buf.String(), "slow session lookup 42")
}
