package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcoot/letterswap/internal/factory"
	redisstorage "github.com/mcoot/letterswap/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	StorageType    string
	RedisURL       string
	SQLitePath     string
	DictionaryPath string
	Difficulty     string
	Seed           string
	Output         string
	Verbose        bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType:    getEnvOrDefault("LETTERSWAP_STORAGE", factory.StorageTypeMemory),
		RedisURL:       getEnvOrDefault("LETTERSWAP_REDIS_URL", redisstorage.DefaultConfig().URL),
		SQLitePath:     getEnvOrDefault("LETTERSWAP_SQLITE_PATH", "letterswap.db"),
		DictionaryPath: os.Getenv("LETTERSWAP_DICTIONARY"),
		Difficulty:     getEnvOrDefault("LETTERSWAP_DIFFICULTY", "medium"),
		Seed:           os.Getenv("LETTERSWAP_SEED"),
		Output:         "text",
		Verbose:        false,
	}
}

// FactoryConfig converts the CLI settings into application factory settings
func (c *Config) FactoryConfig() (factory.Config, error) {
	fc := factory.Config{
		DictionaryPath: c.DictionaryPath,
		StorageType:    c.StorageType,
		SQLitePath:     c.SQLitePath,
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}

	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return factory.Config{}, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
		}
		fc.Seed = &seed
	}

	return fc, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
