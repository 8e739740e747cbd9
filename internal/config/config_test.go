package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
)

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(`
[database]
password = "secret"
`)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "HLS", cfg.Studio.ConfirmationPrefix)
	assert.Equal(t, domain.MissingHoursUnconstrained, cfg.Studio.Policy())
	assert.True(t, cfg.Studio.StrictCatalog)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090

[studio]
confirmation_prefix = "LASH"
missing_hours_policy = "closed"
strict_catalog = false

[notifications]
enabled = true
smtp_host = "smtp.example.com"
from = "studio@example.com"
admin_email = "owner@example.com"
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, domain.MissingHoursClosed, cfg.Studio.Policy())
	assert.False(t, cfg.Studio.StrictCatalog)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, 587, cfg.Notifications.SMTPPort)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad port":           "[server]\nhttp_port = 70000\n",
		"bad policy":         "[studio]\nmissing_hours_policy = \"sometimes\"\n",
		"notifications host": "[notifications]\nenabled = true\n",
		"empty db host":      "[database]\nhost = \"\"\n",
		"long prefix":        "[studio]\nconfirmation_prefix = \"LASHSTUDIO24\"\n",
		"lowercase prefix":   "[studio]\nconfirmation_prefix = \"hls\"\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_LongestPrefixFitsColumn(t *testing.T) {
	cfg, err := Parse("[studio]\nconfirmation_prefix = \"LASHSTUDIO2\"\n")
	require.NoError(t, err)
	assert.Equal(t, "LASHSTUDIO2", cfg.Studio.ConfirmationPrefix)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("[server\nhttp_port = ")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logs]\nlevel = \"debug\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "lash", Password: "p@ss", DBName: "booking", SSLMode: "disable"}
	assert.Equal(t, "postgres://lash:p%40ss@db:5432/booking?sslmode=disable", d.DSN())
}
