package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/encalc/pkg/config/env"
	"github.com/DjordjeVuckovic/encalc/pkg/utils"
)

const (
	DefaultPort                = "8080"
	DefaultMaxExpressionLength = 4096
	DefaultMaxBatchSize        = 100
)

type Config struct {
	Env                 string
	Port                string
	UseHttp2            bool
	CorsOrigins         []string
	LogLevel            slog.Level
	MaxExpressionLength int
	MaxBatchSize        int
}

func LoadConfig(defaultEnvPath string) (*Config, error) {
	appEnv := os.Getenv("ENV")
	err := env.LoadDotEnv(appEnv, defaultEnvPath)
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = utils.RemoveEmptyStrings(origins)
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	level, err := env.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	maxLen, err := env.IntOr("MAX_EXPRESSION_LENGTH", DefaultMaxExpressionLength)
	if err != nil {
		return nil, err
	}

	maxBatch, err := env.IntOr("MAX_BATCH_SIZE", DefaultMaxBatchSize)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:                 appEnv,
		Port:                port,
		UseHttp2:            useHttp2,
		CorsOrigins:         origins,
		LogLevel:            level,
		MaxExpressionLength: maxLen,
		MaxBatchSize:        maxBatch,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
