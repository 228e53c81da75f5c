package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "1MB", cfg.Server.MaxBodySize)
	assert.Equal(t, "https://cloud-api.yandex.net", cfg.Yandex.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Yandex.Timeout)
	assert.Equal(t, 0, cfg.Yandex.Limit)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 300*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "relay.yaml")
	content := `
server:
  port: "9090"
yandex:
  token: file-token
  qps: 0
  timeout: 5s
  limit: 200
cache:
  ttl: 1m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file-token", cfg.Yandex.Token)
	assert.Equal(t, 0, cfg.Yandex.QPS)
	assert.Equal(t, 5*time.Second, cfg.Yandex.Timeout)
	assert.Equal(t, 200, cfg.Yandex.Limit)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YADISK_YANDEX_TOKEN", "env-token")
	t.Setenv("YADISK_SERVER_PORT", "7070")

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Yandex.Token)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YADISK_YANDEX_TOKEN=dotenv-token\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("YADISK_YANDEX_TOKEN") })

	cfg, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "dotenv-token", cfg.Yandex.Token)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: "8080"},
			Yandex: YandexConfig{BaseURL: "https://cloud-api.yandex.net", Timeout: time.Second},
			Cache:  CacheConfig{TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.Yandex.BaseURL = "" }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.Yandex.BaseURL = "/v1" }, wantErr: true},
		{name: "negative qps", mutate: func(c *Config) { c.Yandex.QPS = -1 }, wantErr: true},
		{name: "negative limit", mutate: func(c *Config) { c.Yandex.Limit = -5 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Yandex.Timeout = 0 }, wantErr: true},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: true},
		{name: "bad body size", mutate: func(c *Config) { c.Server.MaxBodySize = "lots" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = "70000" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerBodyLimit(t *testing.T) {
	assert.Equal(t, int64(1000000), ServerConfig{MaxBodySize: "1MB"}.BodyLimit())
	assert.Equal(t, int64(512*1024), ServerConfig{MaxBodySize: "512KiB"}.BodyLimit())
	assert.Zero(t, ServerConfig{}.BodyLimit())
	assert.Zero(t, ServerConfig{MaxBodySize: "lots"}.BodyLimit())
}

func TestServerAddress(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: "8080"}.Address())
}
