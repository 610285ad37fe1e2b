package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultEnv            = "local"
	defaultConfigDir      = ".itemdesk"
	defaultRequestTimeout = 30
	defaultStrategy       = StrategyReload

	StrategyReload = "reload"
	StrategyPatch  = "patch"
)

type Config struct {
	Env           string
	ServerAddress string
	EnableTLS     bool
	ConfigDir     string
	// Файл с токеном сессии и CSRF токеном.
	SessionPath string
	// SQLite база с последними загруженными списками.
	CachePath      string
	RequestTimeout time.Duration
	// Обновление списка после изменения: reload или patch.
	RefreshStrategy string
}

// Load читает .env, необязательный YAML файл и переменные окружения.
// Пустой configFile означает поиск config.yaml в ~/.itemdesk и текущей директории.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("enable_tls", false)
	v.SetDefault("config_dir", "")
	v.SetDefault("request_timeout_seconds", defaultRequestTimeout)
	v.SetDefault("refresh_strategy", defaultStrategy)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	configDir := v.GetString("config_dir")
	if configDir == "" {
		configDir = filepath.Join(home, defaultConfigDir)
	}

	cfg := &Config{
		Env:             v.GetString("app_env"),
		ServerAddress:   v.GetString("server_address"),
		EnableTLS:       v.GetBool("enable_tls"),
		ConfigDir:       configDir,
		SessionPath:     filepath.Join(configDir, "session.json"),
		CachePath:       filepath.Join(configDir, "cache.db"),
		RequestTimeout:  time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		RefreshStrategy: strings.ToLower(v.GetString("refresh_strategy")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout_seconds должен быть положительным")
	}
	switch c.RefreshStrategy {
	case StrategyReload, StrategyPatch:
	default:
		return fmt.Errorf("неизвестная refresh_strategy: %q", c.RefreshStrategy)
	}
	return nil
}

// BaseURL возвращает адрес сервера со схемой. Адрес со схемой
// (http://...) используется как есть.
func (c *Config) BaseURL() string {
	addr := strings.TrimRight(c.ServerAddress, "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if c.EnableTLS {
		return "https://" + addr
	}
	return "http://" + addr
}

// EnsureDir создает директорию конфигурации.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.ConfigDir, 0o700)
}
