package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "N8N_WEBHOOK_URL", "CORS_ALLOWED_ORIGINS", "RELAY_CONFIG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Webhook.Enabled() {
		t.Fatal("expected webhook disabled when N8N_WEBHOOK_URL is unset")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected default origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadPortForms(t *testing.T) {
	cases := map[string]string{
		"9000":           ":9000",
		":9001":          ":9001",
		"127.0.0.1:9002": "127.0.0.1:9002",
	}
	for raw, want := range cases {
		clearEnv(t)
		t.Setenv("PORT", raw)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load(%q) err: %v", raw, err)
		}
		if cfg.Server.Addr != want {
			t.Fatalf("PORT=%q: got %s want %s", raw, cfg.Server.Addr, want)
		}
	}
}

func TestLoadRejectsPortWithSpace(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80 80")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT containing a space")
	}
}

func TestLoadWebhookURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("N8N_WEBHOOK_URL", "  https://n8n.example.com/webhook/articles  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.Webhook.Enabled() {
		t.Fatal("expected webhook enabled")
	}
	if cfg.Webhook.URL != "https://n8n.example.com/webhook/articles" {
		t.Fatalf("unexpected webhook url: %q", cfg.Webhook.URL)
	}
}

func TestLoadRejectsRelativeWebhookURL(t *testing.T) {
	for _, raw := range []string{"n8n.local/webhook", "ftp://n8n.local/hook"} {
		clearEnv(t)
		t.Setenv("N8N_WEBHOOK_URL", raw)

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for N8N_WEBHOOK_URL=%q", raw)
		}
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, ,http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	got := cfg.CORS.AllowedOrigins
	if len(got) != 2 || got[0] != "https://app.example.com" || got[1] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", got)
	}
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "relay.toml")
	content := `port = "7000"
webhook_url = "http://file.example.com/hook"
cors_allowed_origins = ["https://file.example.com"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RELAY_CONFIG_FILE", path)
	t.Setenv("PORT", "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":7100" {
		t.Fatalf("expected env PORT to win, got %s", cfg.Server.Addr)
	}
	if cfg.Webhook.URL != "http://file.example.com/hook" {
		t.Fatalf("unexpected webhook url: %q", cfg.Webhook.URL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://file.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("RELAY_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
