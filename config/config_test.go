package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("CENTRAL_DATABASE_URL", "postgres://localhost/central")
	v.Set("COMPANY_DATABASE_URL", "postgres://localhost/company")
	v.Set("JWT_SECRET", "secret")
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(baseViper())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 100, cfg.Streaming.BatchSize)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
}

func TestFromViper_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		field string
	}{
		{name: "zero batch size", key: "STREAMING_BATCH_SIZE", value: 0, field: "BatchSize"},
		{name: "negative batch size", key: "STREAMING_BATCH_SIZE", value: -5, field: "BatchSize"},
		{name: "missing central database", key: "CENTRAL_DATABASE_URL", value: "", field: "CentralURL"},
		{name: "missing company database", key: "COMPANY_DATABASE_URL", value: "", field: "CompanyURL"},
		{name: "missing secret", key: "JWT_SECRET", value: "", field: "Secret"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "loud", field: "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := baseViper()
			v.Set(tt.key, tt.value)

			_, err := fromViper(v)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestFromViper_RedisHostRequiredWhenEnabled(t *testing.T) {
	v := baseViper()
	v.Set("REDIS_ENABLED", true)

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")

	v.Set("REDIS_HOST", "localhost")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "6379", cfg.Redis.Port)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	env := "CENTRAL_DATABASE_URL=postgres://file/central\n" +
		"COMPANY_DATABASE_URL=postgres://file/company\n" +
		"JWT_SECRET=file-secret\n" +
		"STREAMING_BATCH_SIZE=25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Chdir(dir)
	t.Setenv("STREAMING_BATCH_SIZE", "7")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://file/central", cfg.Database.CentralURL)
	assert.Equal(t, 7, cfg.Streaming.BatchSize)
}

func TestLoadConfig_WithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CENTRAL_DATABASE_URL", "postgres://env/central")
	t.Setenv("COMPANY_DATABASE_URL", "postgres://env/company")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://env/company", cfg.Database.CompanyURL)
	assert.Equal(t, 100, cfg.Streaming.BatchSize)
}
