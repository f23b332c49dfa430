package config

import "testing"

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CATALOG_DIR", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.DBPath != defaultDBPath {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, defaultDBPath)
	}
	if !cfg.IsDev() {
		t.Fatal("empty APP_ENV should count as dev")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/quotes.db")
	t.Setenv("CATALOG_DIR", "/etc/estimator/catalogs")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	if cfg.Port != "9090" || cfg.DBPath != "/tmp/quotes.db" || cfg.CatalogDir != "/etc/estimator/catalogs" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.IsDev() {
		t.Fatal("production APP_ENV should not count as dev")
	}
}

func TestNewLogger_LevelAndFormatValidation(t *testing.T) {
	good := Config{LogLevel: "debug", LogFormat: "console"}
	logger, err := good.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	_ = logger.Sync()

	if _, err := (Config{LogLevel: "loud"}).NewLogger(); err == nil {
		t.Fatal("expected invalid-level error")
	}
	if _, err := (Config{LogFormat: "xml"}).NewLogger(); err == nil {
		t.Fatal("expected invalid-format error")
	}
}
