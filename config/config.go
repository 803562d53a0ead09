package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config armazena as configurações do serviço de staging do catálogo.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL) onde ficam os payloads preparados
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr    string
	CacheTimeout time.Duration
	CacheTTL     time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// Load carrega as configurações a partir das variáveis de ambiente.
// O arquivo .env (se existir) já deve ter sido carregado pelo binário.
func Load() (*Config, error) {
	databaseURL, err := requireEnv("DATABASE_URL")
	if err != nil {
		return nil, err
	}

	dbTimeout, err := getIntEnv("DB_TIMEOUT_SEC", 5)
	if err != nil {
		return nil, err
	}
	cacheTimeout, err := getIntEnv("CACHE_TIMEOUT_SEC", 2)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getIntEnv("CACHE_TTL_SEC", 300)
	if err != nil {
		return nil, err
	}
	maxRequests, err := getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100)
	if err != nil {
		return nil, err
	}
	period, err := getIntEnv("RATE_LIMIT_PERIOD_MIN", 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL: databaseURL,
		DBTimeout:   time.Duration(dbTimeout) * time.Second,

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTimeout: time.Duration(cacheTimeout) * time.Second,
		CacheTTL:     time.Duration(cacheTTL) * time.Second,

		RateLimitMaxRequests: maxRequests,
		RateLimitPeriod:      time.Duration(period) * time.Minute,
	}, nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// requireEnv lê uma variável obrigatória.
func requireEnv(key string) (string, error) {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value, nil
	}
	return "", fmt.Errorf("erro de configuração: a variável de ambiente %s deve ser definida", key)
}

// getIntEnv lê uma variável de ambiente numérica.
func getIntEnv(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("erro de configuração: %s ('%s') não é um número inteiro válido: %w", key, valueStr, err)
	}
	return value, nil
}
