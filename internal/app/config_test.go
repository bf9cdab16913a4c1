package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stock-data/internal/provider/yahoo"
)

// chdirTemp isolates a test from the caller's .env and config environment.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{"DATA_PROVIDER", "LOG_LEVEL", "SAVE_FORMAT", "METRICS_TEXTFILE", "YAHOO_BASE_URL", "YAHOO_USER_AGENT", "YAHOO_TIMEOUT_SEC", "YAHOO_TOKYO_SUFFIX"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataProvider != "yahoo" || cfg.LogLevel != "error" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Yahoo.BaseURL != yahoo.DefaultBaseURL || cfg.Yahoo.Timeout() != yahoo.DefaultTimeout {
		t.Errorf("unexpected yahoo defaults: %+v", cfg.Yahoo)
	}
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "stockdata.yml")
	yml := `log_level: info
save_format: parquet
yahoo:
  base_url: http://yaml.example
  timeout_sec: 7
  tokyo_suffix: true
  symbol_map:
    SPX: ^GSPC
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("YAHOO_COOKIE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("env should override yaml log level, got %q", cfg.LogLevel)
	}
	if cfg.SaveFormat != "parquet" || cfg.Yahoo.BaseURL != "http://yaml.example" {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	if cfg.Yahoo.Timeout() != 7*time.Second || !cfg.Yahoo.TokyoSuffix {
		t.Errorf("unexpected yahoo config: %+v", cfg.Yahoo)
	}
	if cfg.Yahoo.SymbolMap["SPX"] != "^GSPC" {
		t.Errorf("symbol map not loaded: %v", cfg.Yahoo.SymbolMap)
	}
	if cfg.Yahoo.CookieURL != "" {
		t.Errorf("empty YAHOO_COOKIE_URL should disable the crumb, got %q", cfg.Yahoo.CookieURL)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("YAHOO_TIMEOUT_SEC=12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("YAHOO_TIMEOUT_SEC")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Yahoo.TimeoutSec != 12 {
		t.Errorf("expected timeout from .env, got %d", cfg.Yahoo.TimeoutSec)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("yahoo: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateProvider(t *testing.T) {
	cfg := defaultConfig()
	dp, err := CreateProvider(cfg, nil)
	if err != nil {
		t.Fatalf("CreateProvider: %v", err)
	}
	defer dp.Close()
	if dp.GetName() != "Yahoo" {
		t.Errorf("unexpected provider %q", dp.GetName())
	}

	cfg.DataProvider = "polygon"
	if _, err := CreateProvider(cfg, nil); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
