package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "METRICS_PORT", "REDIS_HOST", "REDIS_PORT", "SEEN_TTL", "HTTP_TIMEOUT", "NYAA_URL", "SUKEBEI_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9000"

[http]
timeout = "1m30s"

[redis]
host = "redis"
seen_ttl = "2w"

[sites]
nyaa_url = "http://nyaa.mirror"

[log]
level = "debug"
format = "json"
`)
	clearEnv(t)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Server.Addr = ":9000"
	want.HTTP.Timeout = Duration{90 * time.Second}
	want.Redis.Host = "redis"
	want.Redis.SeenTTL = Duration{14 * 24 * time.Hour}
	want.Sites.NyaaURL = "http://nyaa.mirror"
	want.Log = LogConfig{Level: "debug", Format: "json"}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[redis]
host = "from-file"
`)
	clearEnv(t)
	t.Setenv("PORT", "8000")
	t.Setenv("METRICS_PORT", "9100")
	t.Setenv("REDIS_HOST", "from-env")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("SEEN_TTL", "3d")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("SUKEBEI_URL", "http://sukebei.mirror")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.Server.Addr)
	require.Equal(t, ":9100", cfg.Server.MetricsAddr)
	require.Equal(t, "from-env:6380", cfg.Redis.Addr())
	require.Equal(t, 72*time.Hour, cfg.Redis.SeenTTL.Duration)
	require.Equal(t, 5*time.Second, cfg.HTTP.Timeout.Duration)
	require.Equal(t, "http://sukebei.mirror", cfg.Sites.SukebeiURL)
	require.Equal(t, "https://nyaa.si", cfg.Sites.NyaaURL)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "malformed toml", file: "[server\naddr = 1"},
		{name: "bad duration in file", file: "[http]\ntimeout = \"soon\""},
		{name: "bad SEEN_TTL", env: map[string]string{"SEEN_TTL": "forever"}},
		{name: "bad REDIS_PORT", env: map[string]string{"REDIS_PORT": "six"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1w2d")))
	require.Equal(t, 9*24*time.Hour, d.Duration)

	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1w2d", string(text))
}

func TestDurationFlag(t *testing.T) {
	d := Duration{30 * time.Second}
	require.Equal(t, "duration", d.Type())
	require.Equal(t, "30s", d.String())

	require.NoError(t, d.Set("1d12h"))
	require.Equal(t, 36*time.Hour, d.Duration)
	require.Equal(t, "1d12h", d.String())

	require.ErrorContains(t, d.Set("soon"), "invalid duration")
	require.Equal(t, 36*time.Hour, d.Duration)
}
