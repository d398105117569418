package config

import (
	"testing"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://ops.example.com/api")
	t.Setenv("API_TIMEOUT_SECONDS", "15")
	t.Setenv("DOWNLOAD_DIR", "/tmp/exports")
	t.Setenv("REFRESH_INTERVAL_SECONDS", "60")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "https://ops.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Equal(t, "/tmp/exports", cfg.DownloadDir)
	assert.Equal(t, time.Minute, cfg.RefreshInterval())
	assert.Equal(t, cfg, GetConfig())
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:5000/api")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.GeneralVersion)
	assert.Equal(t, ".", cfg.DownloadDir)
	assert.Zero(t, cfg.Timeout())
	assert.Zero(t, cfg.RefreshInterval())
	assert.False(t, cfg.EventsCacheEnabled())
	assert.False(t, cfg.HasCredentials())
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:   "valid",
			config: Config{APIBaseURL: "http://localhost:5000/api"},
		},
		{
			name:      "relative url",
			config:    Config{APIBaseURL: "/api"},
			wantError: true,
		},
		{
			name:      "unsupported scheme",
			config:    Config{APIBaseURL: "ftp://example.com/api"},
			wantError: true,
		},
		{
			name:      "negative timeout",
			config:    Config{APIBaseURL: "http://localhost/api", APITimeoutSeconds: -1},
			wantError: true,
		},
		{
			name:      "negative refresh",
			config:    Config{APIBaseURL: "http://localhost/api", RefreshIntervalSeconds: -5},
			wantError: true,
		},
		{
			name:      "events cache without port",
			config:    Config{APIBaseURL: "http://localhost/api", EventsCacheAddress: "localhost"},
			wantError: true,
		},
		{
			name: "events cache with port",
			config: Config{
				APIBaseURL:         "http://localhost/api",
				EventsCacheAddress: "localhost",
				EventsCachePort:    6379,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.config, logger.New("config"))
			if tc.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
