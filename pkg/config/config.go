package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:habrdigest.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Background worker scheduling"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article summarization"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram delivery configuration"`

	Scraper ScraperConfig `yaml:"scraper" json:"scraper" jsonschema:"description=Habr scraping configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest composition settings"`
}

// ScheduleConfig holds intervals for the background workers
type ScheduleConfig struct {
	DigestInterval       time.Duration `yaml:"digest_interval" json:"digest_interval" jsonschema:"default=1h,description=How often the delivery tick runs"`
	IngestInterval       time.Duration `yaml:"ingest_interval" json:"ingest_interval" jsonschema:"default=6h,description=How often new articles are scraped"`
	SummarizeInterval    time.Duration `yaml:"summarize_interval" json:"summarize_interval" jsonschema:"default=30m,description=How often the summarization backlog is drained"`
	CleanupInterval      time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=24h,description=How often retention cleanup runs"`
	MaxWorkers           int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent ingestion workers"`
	ArticleRetentionDays int           `yaml:"article_retention_days" json:"article_retention_days" jsonschema:"default=30,description=Days to keep delivered articles"`
	RunRetentionDays     int           `yaml:"run_retention_days" json:"run_retention_days" jsonschema:"default=14,description=Days to keep ingestion run records"`
	SummarizeBatch       int           `yaml:"summarize_batch" json:"summarize_batch" jsonschema:"default=20,description=Articles summarized per backlog pass"`
}

// LLMConfig holds LLM configuration for article summarization
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	ContentLimit int           `yaml:"content_limit" json:"content_limit" jsonschema:"default=3000,description=Maximum article characters sent for summarization"`
}

// TelegramConfig holds Telegram bot API settings
type TelegramConfig struct {
	Token   string        `yaml:"token" json:"token" jsonschema:"required,description=Telegram bot token"`
	APIURL  string        `yaml:"api_url" json:"api_url" jsonschema:"default=https://api.telegram.org,description=Telegram API base URL"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// ScraperConfig holds Habr scraping settings
type ScraperConfig struct {
	BaseURL        string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://habr.com,description=Habr base URL"`
	Mode           string        `yaml:"mode" json:"mode" jsonschema:"default=rss,enum=rss,enum=html,description=Scraping mode"`
	MaxArticles    int           `yaml:"max_articles" json:"max_articles" jsonschema:"default=20,description=Maximum articles per topic per run"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP timeout per request"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=HabrDigest/1.0,description=User agent for HTTP requests"`
	ExtractContent bool          `yaml:"extract_content" json:"extract_content" jsonschema:"default=false,description=Fetch and extract full article text"`
}

// DigestConfig holds digest composition settings
type DigestConfig struct {
	ArticlesPerDigest int `yaml:"articles_per_digest" json:"articles_per_digest" jsonschema:"default=5,minimum=1,description=Maximum articles per digest message"`
	MinFrequencyHours int `yaml:"min_frequency_hours" json:"min_frequency_hours" jsonschema:"default=6,description=Minimum allowed subscription frequency"`
	MaxFrequencyHours int `yaml:"max_frequency_hours" json:"max_frequency_hours" jsonschema:"default=24,description=Maximum allowed subscription frequency"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:habrdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.DigestInterval == 0 {
		cfg.Schedule.DigestInterval = time.Hour
	}
	if cfg.Schedule.IngestInterval == 0 {
		cfg.Schedule.IngestInterval = 6 * time.Hour
	}
	if cfg.Schedule.SummarizeInterval == 0 {
		cfg.Schedule.SummarizeInterval = 30 * time.Minute
	}
	if cfg.Schedule.CleanupInterval == 0 {
		cfg.Schedule.CleanupInterval = 24 * time.Hour
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.ArticleRetentionDays == 0 {
		cfg.Schedule.ArticleRetentionDays = 30
	}
	if cfg.Schedule.RunRetentionDays == 0 {
		cfg.Schedule.RunRetentionDays = 14
	}
	if cfg.Schedule.SummarizeBatch == 0 {
		cfg.Schedule.SummarizeBatch = 20
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.ContentLimit == 0 {
		cfg.LLM.ContentLimit = 3000
	}

	// set defaults for telegram
	if cfg.Telegram.APIURL == "" {
		cfg.Telegram.APIURL = "https://api.telegram.org"
	}
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}

	// set defaults for scraper
	if cfg.Scraper.BaseURL == "" {
		cfg.Scraper.BaseURL = "https://habr.com"
	}
	if cfg.Scraper.Mode == "" {
		cfg.Scraper.Mode = "rss"
	}
	if cfg.Scraper.MaxArticles == 0 {
		cfg.Scraper.MaxArticles = 20
	}
	if cfg.Scraper.Timeout == 0 {
		cfg.Scraper.Timeout = 30 * time.Second
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = "HabrDigest/1.0"
	}

	// set defaults for digest
	if cfg.Digest.ArticlesPerDigest == 0 {
		cfg.Digest.ArticlesPerDigest = 5
	}
	if cfg.Digest.MinFrequencyHours == 0 {
		cfg.Digest.MinFrequencyHours = 6
	}
	if cfg.Digest.MaxFrequencyHours == 0 {
		cfg.Digest.MaxFrequencyHours = 24
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.ContentLimit < 0 {
		return fmt.Errorf("llm.content_limit must be non-negative")
	}

	// validate telegram config
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	// validate scraper config
	if cfg.Scraper.Mode != "rss" && cfg.Scraper.Mode != "html" {
		return fmt.Errorf("scraper.mode must be rss or html, got %q", cfg.Scraper.Mode)
	}
	if cfg.Scraper.Timeout < time.Second {
		return fmt.Errorf("scraper.timeout must be at least 1 second")
	}

	// validate digest config
	if cfg.Digest.ArticlesPerDigest < 1 {
		return fmt.Errorf("digest.articles_per_digest must be at least 1")
	}
	if cfg.Digest.MinFrequencyHours < 1 {
		return fmt.Errorf("digest.min_frequency_hours must be at least 1")
	}
	if cfg.Digest.MaxFrequencyHours < cfg.Digest.MinFrequencyHours {
		return fmt.Errorf("digest.max_frequency_hours must be >= min_frequency_hours")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetTelegramConfig returns Telegram configuration
func (c *Config) GetTelegramConfig() TelegramConfig {
	return c.Telegram
}

// GetScraperConfig returns scraper configuration
func (c *Config) GetScraperConfig() ScraperConfig {
	return c.Scraper
}

// GetDigestConfig returns digest composition configuration
func (c *Config) GetDigestConfig() DigestConfig {
	return c.Digest
}
