package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPort matches the port the article processor frontend talks to.
const DefaultPort = "8000"

// DefaultAllowedOrigins lists the local Vite dev server origins.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Webhook WebhookConfig
	CORS    CORSConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// WebhookConfig describes the downstream workflow webhook.
type WebhookConfig struct {
	URL string
}

// Enabled 表示是否配置了 webhook 地址。
func (c WebhookConfig) Enabled() bool {
	return c.URL != ""
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// fileConfig mirrors the optional TOML file named by RELAY_CONFIG_FILE.
type fileConfig struct {
	Port               string   `toml:"port"`
	WebhookURL         string   `toml:"webhook_url"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// Load 从配置文件与环境变量加载配置，环境变量优先。
func Load() (*Config, error) {
	file, err := loadFileConfig(strings.TrimSpace(os.Getenv("RELAY_CONFIG_FILE")))
	if err != nil {
		return nil, err
	}

	server, err := loadServerConfig(file)
	if err != nil {
		return nil, err
	}

	webhook, err := loadWebhookConfig(file)
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Webhook: webhook, CORS: loadCORSConfig(file)}, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	return fc, nil
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig(file fileConfig) (ServerConfig, error) {
	port := getEnvOrDefault("PORT", strings.TrimSpace(file.Port))
	if port == "" {
		port = DefaultPort
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8000" 或 "127.0.0.1:8000"。
		return ServerConfig{Addr: port}, nil
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadWebhookConfig(file fileConfig) (WebhookConfig, error) {
	raw := getEnvOrDefault("N8N_WEBHOOK_URL", strings.TrimSpace(file.WebhookURL))
	if raw == "" {
		return WebhookConfig{}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return WebhookConfig{}, fmt.Errorf("invalid N8N_WEBHOOK_URL value %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return WebhookConfig{}, fmt.Errorf("invalid N8N_WEBHOOK_URL value %q: want absolute http(s) URL", raw)
	}

	return WebhookConfig{URL: raw}, nil
}

func loadCORSConfig(file fileConfig) CORSConfig {
	if origins := parseListEnv("CORS_ALLOWED_ORIGINS"); len(origins) > 0 {
		return CORSConfig{AllowedOrigins: origins}
	}
	if len(file.CORSAllowedOrigins) > 0 {
		return CORSConfig{AllowedOrigins: append([]string(nil), file.CORSAllowedOrigins...)}
	}
	return CORSConfig{AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...)}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseListEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
