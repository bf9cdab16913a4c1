package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stock-data/internal/provider/yahoo"
)

// Config holds application configuration. Sources, lowest priority first:
// built-in defaults, the YAML file named by CONFIG_FILE, the environment
// (a .env file in the working directory is loaded into it first).
type Config struct {
	DataProvider    string      `yaml:"data_provider"`
	LogLevel        string      `yaml:"log_level"` // debug | info | warn | error
	SaveFormat      string      `yaml:"save_format"`
	MetricsTextfile string      `yaml:"metrics_textfile"`
	Yahoo           YahooConfig `yaml:"yahoo"`
}

// YahooConfig configures the Yahoo Finance client.
type YahooConfig struct {
	BaseURL     string            `yaml:"base_url"`
	CookieURL   string            `yaml:"cookie_url"` // empty disables the crumb handshake
	UserAgent   string            `yaml:"user_agent"`
	TimeoutSec  int               `yaml:"timeout_sec"`
	TokyoSuffix bool              `yaml:"tokyo_suffix"`
	SymbolMap   map[string]string `yaml:"symbol_map"`
}

// Timeout returns the HTTP timeout as a duration.
func (c YahooConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		DataProvider: "yahoo",
		LogLevel:     "error",
		Yahoo: YahooConfig{
			BaseURL:    yahoo.DefaultBaseURL,
			CookieURL:  yahoo.DefaultCookieURL,
			UserAgent:  yahoo.DefaultUserAgent,
			TimeoutSec: int(yahoo.DefaultTimeout / time.Second),
		},
	}
}

// LoadConfig reads config from defaults, CONFIG_FILE and the environment.
func LoadConfig() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.DataProvider = getEnv("DATA_PROVIDER", cfg.DataProvider)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.SaveFormat = getEnv("SAVE_FORMAT", cfg.SaveFormat)
	cfg.MetricsTextfile = getEnv("METRICS_TEXTFILE", cfg.MetricsTextfile)
	cfg.Yahoo.BaseURL = getEnv("YAHOO_BASE_URL", cfg.Yahoo.BaseURL)
	cfg.Yahoo.UserAgent = getEnv("YAHOO_USER_AGENT", cfg.Yahoo.UserAgent)
	// Set but empty means "no crumb handshake".
	if v, ok := os.LookupEnv("YAHOO_COOKIE_URL"); ok {
		cfg.Yahoo.CookieURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("YAHOO_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Yahoo.TimeoutSec = n
		}
	}
	if v := os.Getenv("YAHOO_TOKYO_SUFFIX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Yahoo.TokyoSuffix = b
		}
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
