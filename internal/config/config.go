package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// UserConfig holds everything the user service needs at process start.
// Secrets are carried here explicitly and injected into the components
// that need them; nothing reads the environment after startup.
type UserConfig struct {
	Port              string
	DBURL             string
	LogLevel          string
	DBMaxConns        int
	JWTSecret         string
	InternalJWTSecret string
	WalletServiceURL  string
	RelayEnabled      bool
	RelayInterval     time.Duration
	RelayGrace        time.Duration
	RelayMaxAttempts  int
}

// WalletConfig holds the wallet service configuration.
type WalletConfig struct {
	Port              string
	DBURL             string
	LogLevel          string
	DBMaxConns        int
	InternalJWTSecret string
}

func LoadUserConfig() (*UserConfig, error) {
	_ = godotenv.Load("config.env")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	internalSecret := os.Getenv("INTERNAL_JWT_SECRET")
	if internalSecret == "" {
		return nil, fmt.Errorf("INTERNAL_JWT_SECRET environment variable is required")
	}
	walletURL := os.Getenv("WALLET_SERVICE_URL")
	if walletURL == "" {
		return nil, fmt.Errorf("WALLET_SERVICE_URL environment variable is required")
	}

	return &UserConfig{
		Port:              envOrDefault("USER_SERVICE_PORT", "3002"),
		DBURL:             dbURLFromEnv("USER_DB"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		DBMaxConns:        envInt("USER_DB_MAX_CONNS", 8),
		JWTSecret:         jwtSecret,
		InternalJWTSecret: internalSecret,
		WalletServiceURL:  walletURL,
		RelayEnabled:      os.Getenv("OUTBOX_RELAY_ENABLED") == "true",
		RelayInterval:     time.Duration(envInt("OUTBOX_RELAY_INTERVAL_SECONDS", 30)) * time.Second,
		RelayGrace:        time.Duration(envInt("OUTBOX_RELAY_GRACE_SECONDS", 60)) * time.Second,
		RelayMaxAttempts:  envInt("OUTBOX_RELAY_MAX_ATTEMPTS", 5),
	}, nil
}

func LoadWalletConfig() (*WalletConfig, error) {
	_ = godotenv.Load("config.env")

	internalSecret := os.Getenv("INTERNAL_JWT_SECRET")
	if internalSecret == "" {
		return nil, fmt.Errorf("INTERNAL_JWT_SECRET environment variable is required")
	}

	return &WalletConfig{
		Port:              envOrDefault("WALLET_SERVICE_PORT", "3001"),
		DBURL:             dbURLFromEnv("WALLET_DB"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		DBMaxConns:        envInt("WALLET_DB_MAX_CONNS", 8),
		InternalJWTSecret: internalSecret,
	}, nil
}

// DBURL builds the Postgres URL for the named service ("user" or
// "wallet") from its env var set. Used by the migrator, which needs no
// other configuration.
func DBURL(service string) string {
	_ = godotenv.Load("config.env")
	if service == "user" {
		return dbURLFromEnv("USER_DB")
	}
	return dbURLFromEnv("WALLET_DB")
}

func dbURLFromEnv(prefix string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv(prefix+"_USER"),
		os.Getenv(prefix+"_PASSWORD"),
		os.Getenv(prefix+"_HOST"),
		os.Getenv(prefix+"_PORT"),
		os.Getenv(prefix+"_NAME"),
	)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}
