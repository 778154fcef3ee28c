package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/config"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/service"
	"github.com/zeroentropy-ai/zeroentropy-mcp/internal/zeroentropy"
)

type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	Transport      string
	HTTPAddr       string
	APIPort        string
}

type Dependencies struct {
	Client  zeroentropy.Client
	Service *service.Service
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		APIKey:         getEnv("ZEROENTROPY_API_KEY", ""),
		BaseURL:        getEnv("ZEROENTROPY_BASE_URL", zeroentropy.DefaultBaseURL),
		RequestTimeout: getEnvSeconds("ZEROENTROPY_TIMEOUT_SECONDS", 60),
		Transport:      getEnv("MCP_TRANSPORT", "stdio"),
		HTTPAddr:       getEnv("MCP_HTTP_ADDR", ":3000"),
		APIPort:        getEnv("ZE_API_PORT", "18082"),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	client, err := zeroentropy.NewHTTPClient(cfg.APIKey, cfg.BaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create ZeroEntropy client: %w", err)
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to load tool defaults: %w", err)
	}

	svc := service.NewService(client, defaults, logger)

	return &Dependencies{
		Client:  client,
		Service: svc,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return time.Duration(value) * time.Second
}
