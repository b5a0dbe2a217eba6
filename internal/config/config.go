package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr      string
	Debug     bool
	StaticDir string
}

// loadServerConfig 解析服务器监听地址与静态资源目录。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	debug, err := parseBoolEnv("DEBUG", false)
	if err != nil {
		return ServerConfig{}, err
	}

	staticDir := getEnvOrDefault("STATIC_DIR", "./web/static")

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return ServerConfig{Addr: port, Debug: debug, StaticDir: staticDir}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, Debug: debug, StaticDir: staticDir}, nil
}

// AIConfig 描述 Gemini 模型相关配置。
type AIConfig struct {
	APIKey          string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() (AIConfig, error) {
	cfg := AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 1000,
	}

	if temperature, err := parseOptionalFloatEnv("GEMINI_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if temperature != nil {
		cfg.Temperature = *temperature
	}

	if topP, err := parseOptionalFloatEnv("GEMINI_TOP_P"); err != nil {
		return AIConfig{}, err
	} else if topP != nil {
		cfg.TopP = *topP
	}

	if topK, err := parseOptionalIntEnv("GEMINI_TOP_K"); err != nil {
		return AIConfig{}, err
	} else if topK != nil {
		cfg.TopK = *topK
	}

	if maxTokens, err := parseOptionalIntEnv("GEMINI_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if maxTokens != nil {
		cfg.MaxOutputTokens = *maxTokens
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
