package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	LoginDelay             time.Duration
	LoginLockTTL           time.Duration
	BcryptCost             int
	NotifyWorkers          int
	NotifyQueueSize        int
	RateLimit              int
	ShutdownTimeoutSeconds int
	LogLevel               string
	SeedFixtures           bool
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	ints := map[string]int{}
	for key, def := range map[string]int{
		"LOGIN_DELAY_MS":           600,
		"LOGIN_LOCK_TTL_SECONDS":   10,
		"BCRYPT_COST":              bcrypt.DefaultCost,
		"NOTIFY_WORKERS":           2,
		"NOTIFY_QUEUE_SIZE":        64,
		"RATE_LIMIT_PER_MINUTE":    120,
		"SHUTDOWN_TIMEOUT_SECONDS": 20,
	} {
		v, err := getEnvAsInt(key, def)
		if err != nil {
			return Config{}, err
		}
		ints[key] = v
	}

	seed, err := getEnvAsBool("SEED_FIXTURES", true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "file:taskphoto?mode=memory&cache=shared"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		LoginDelay:             time.Duration(ints["LOGIN_DELAY_MS"]) * time.Millisecond,
		LoginLockTTL:           time.Duration(ints["LOGIN_LOCK_TTL_SECONDS"]) * time.Second,
		BcryptCost:             ints["BCRYPT_COST"],
		NotifyWorkers:          ints["NOTIFY_WORKERS"],
		NotifyQueueSize:        ints["NOTIFY_QUEUE_SIZE"],
		RateLimit:              ints["RATE_LIMIT_PER_MINUTE"],
		ShutdownTimeoutSeconds: ints["SHUTDOWN_TIMEOUT_SECONDS"],
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		SeedFixtures:           seed,
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY_MS must not be negative")
	}
	if cfg.LoginLockTTL <= 0 {
		return fmt.Errorf("LOGIN_LOCK_TTL_SECONDS must be greater than 0")
	}
	// A lease shorter than the delay would expire while its login is still waiting.
	if cfg.LoginLockTTL <= cfg.LoginDelay {
		return fmt.Errorf("LOGIN_LOCK_TTL_SECONDS must be longer than LOGIN_DELAY_MS")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.NotifyWorkers <= 0 {
		return fmt.Errorf("NOTIFY_WORKERS must be greater than 0")
	}
	if cfg.NotifyQueueSize <= 0 {
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
