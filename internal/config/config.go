package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile  string   `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Storage  string   `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis    Redis    `yaml:"redis"`
	Terminal Terminal `yaml:"terminal"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

type Terminal struct {
	EmptyGlyph   string `yaml:"empty-glyph" env:"EMPTY_GLYPH" env-default:"_"`
	NoColor      bool   `yaml:"no-color" env:"TERMINAL_NO_COLOR"`
	MaxBoardSize int    `yaml:"max-board-size" env:"MAX_BOARD_SIZE" env-default:"99"`
}

// MustLoad - loads config.yml when it exists, otherwise the environment and defaults only.
// A .env file next to the binary is loaded into the environment first.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
