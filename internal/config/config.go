package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type Config struct {
	LogLevel          string  `yaml:"log-level"           env:"LOG_LEVEL"           env-default:"info"`
	LogFile           string  `yaml:"log-file"            env:"LOG_FILE"            env-default:"tictactoe.log"`
	Opponent          string  `yaml:"opponent"            env:"OPPONENT"            env-default:"smart"`
	FirstPlayer       string  `yaml:"first-player"        env:"FIRST_PLAYER"        env-default:"human"`
	NoColor           bool    `yaml:"no-color"            env:"NO_COLOR"            env-default:"false"`
	ClearScreen       bool    `yaml:"clear-screen"        env:"CLEAR_SCREEN"        env-default:"false"`
	Results           Results `yaml:"results"`
	Redis             Redis   `yaml:"redis"`
	SQLiteStoragePath string  `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"results.db"`
}

type Results struct {
	Driver   string `yaml:"driver"    env:"RESULTS_DRIVER"    env-default:"file"`
	FilePath string `yaml:"file-path" env:"RESULTS_FILE_PATH" env-default:"results.json"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the config file, or from the environment when it is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
