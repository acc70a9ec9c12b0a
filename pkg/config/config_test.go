package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

llm:
  endpoint: https://api.openai.com/v1
  api_key: test-key
  model: gpt-4o-mini
  temperature: 0.5
  content_limit: 2000

telegram:
  token: 123456:test-token
  timeout: 15s

scraper:
  mode: html
  max_articles: 10

schedule:
  summarize_batch: 50

digest:
  articles_per_digest: 3
  min_frequency_hours: 6
  max_frequency_hours: 48
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 2000, cfg.LLM.ContentLimit)
		assert.Equal(t, "123456:test-token", cfg.Telegram.Token)
		assert.Equal(t, 15*time.Second, cfg.Telegram.Timeout)
		assert.Equal(t, "html", cfg.Scraper.Mode)
		assert.Equal(t, 10, cfg.Scraper.MaxArticles)
		assert.Equal(t, 50, cfg.Schedule.SummarizeBatch)
		assert.Equal(t, 3, cfg.Digest.ArticlesPerDigest)
		assert.Equal(t, 48, cfg.Digest.MaxFrequencyHours)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
llm:
  model: gpt-4o-mini

telegram:
  token: 123456:test-token
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:habrdigest.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.Schedule.DigestInterval)
		assert.Equal(t, 6*time.Hour, cfg.Schedule.IngestInterval)
		assert.Equal(t, 30*time.Minute, cfg.Schedule.SummarizeInterval)
		assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
		assert.Equal(t, 30, cfg.Schedule.ArticleRetentionDays)
		assert.Equal(t, 20, cfg.Schedule.SummarizeBatch)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 3000, cfg.LLM.ContentLimit)
		assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
		assert.Equal(t, "https://habr.com", cfg.Scraper.BaseURL)
		assert.Equal(t, "rss", cfg.Scraper.Mode)
		assert.Equal(t, "HabrDigest/1.0", cfg.Scraper.UserAgent)
		assert.Equal(t, 5, cfg.Digest.ArticlesPerDigest)
		assert.Equal(t, 6, cfg.Digest.MinFrequencyHours)
		assert.Equal(t, 24, cfg.Digest.MaxFrequencyHours)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_BOT_TOKEN", "env-token")
		configContent := `
llm:
  model: gpt-4o-mini

telegram:
  token: ${TEST_BOT_TOKEN}
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.Telegram.Token)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "missing llm model",
			content: `
telegram:
  token: 123456:test-token
`,
			errMsg: "llm.model is required",
		},
		{
			name: "missing telegram token",
			content: `
llm:
  model: gpt-4o-mini
`,
			errMsg: "telegram.token is required",
		},
		{
			name: "bad scraper mode",
			content: `
llm:
  model: gpt-4o-mini
telegram:
  token: 123456:test-token
scraper:
  mode: carrier-pigeon
`,
			errMsg: "scraper.mode must be rss or html",
		},
		{
			name: "temperature out of range",
			content: `
llm:
  model: gpt-4o-mini
  temperature: 3.5
telegram:
  token: 123456:test-token
`,
			errMsg: "llm.temperature must be between 0 and 2",
		},
		{
			name: "inverted frequency bounds",
			content: `
llm:
  model: gpt-4o-mini
telegram:
  token: 123456:test-token
digest:
  min_frequency_hours: 48
  max_frequency_hours: 12
`,
			errMsg: "digest.max_frequency_hours must be >= min_frequency_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	configContent := `
server:
  listen: ":7070"
  timeout: 20s

llm:
  model: gpt-4o-mini

telegram:
  token: 123456:test-token
`
	cfg, err := Load(writeConfig(t, configContent))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 20*time.Second, timeout)

	assert.Equal(t, "gpt-4o-mini", cfg.GetLLMConfig().Model)
	assert.Equal(t, "123456:test-token", cfg.GetTelegramConfig().Token)
	assert.Equal(t, "https://habr.com", cfg.GetScraperConfig().BaseURL)
	assert.Equal(t, 5, cfg.GetDigestConfig().ArticlesPerDigest)
}
