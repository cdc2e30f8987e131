package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "CORS_ALLOW_ORIGINS",
		"LOG_LEVEL", "LOG_FORMAT", "LEDGER_TIMEZONE", "STATEMENT_MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "*", cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "Local", cfg.Ledger.TimeZone)
	assert.Equal(t, time.Local, cfg.Ledger.Location)
	assert.Equal(t, int64(20<<20), cfg.Statement.MaxUploadBytes)
	assert.Greater(t, int64(cfg.Server.BodyLimit), cfg.Statement.MaxUploadBytes)
}

func Test_Load_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5")
	t.Setenv("LEDGER_TIMEZONE", "Europe/Rome")
	t.Setenv("STATEMENT_MAX_UPLOAD_MB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "Europe/Rome", cfg.Ledger.Location.String())
	assert.Equal(t, int64(2<<20), cfg.Statement.MaxUploadBytes)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func Test_Load_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown timezone", key: "LEDGER_TIMEZONE", value: "Mars/Olympus"},
		{name: "zero upload limit", key: "STATEMENT_MAX_UPLOAD_MB", value: "0"},
		{name: "upload limit past the cap", key: "STATEMENT_MAX_UPLOAD_MB", value: "1025"},
		{name: "upload limit that would overflow", key: "STATEMENT_MAX_UPLOAD_MB", value: "9007199254740993"},
		{name: "non-numeric timeout", key: "SERVER_READ_TIMEOUT", value: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func Test_Load_UploadLimitCap(t *testing.T) {
	t.Setenv("STATEMENT_MAX_UPLOAD_MB", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1024<<20), cfg.Statement.MaxUploadBytes)
	assert.Equal(t, 1024<<20+1<<20, cfg.Server.BodyLimit)
}
