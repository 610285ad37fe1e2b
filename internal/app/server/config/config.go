package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = ":8080"
	defaultMigrations  = "migrations"
	defaultSessionTTL  = 24 * time.Hour
	defaultAuthRate    = 30
	defaultSecret      = "SecRetKey"
	defaultEnvironment = EnvLocal
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Auth struct {
	Secret     string        `env:"SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL"`
	// RatePerMin ограничивает запросы к /auth/* с одного IP в минуту.
	RatePerMin int `env:"AUTH_RATE_PER_MIN"`
	// StrictPasswords требует в пароле заглавную букву и спецсимвол.
	StrictPasswords bool `env:"STRICT_PASSWORDS"`
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	// .env необязателен: в контейнере все приходит через окружение
	_ = godotenv.Load(envPath)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnvironment)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("migrations_path", defaultMigrations)
	v.SetDefault("secret", defaultSecret)
	v.SetDefault("session_ttl", defaultSessionTTL)
	v.SetDefault("auth_rate_per_min", defaultAuthRate)
	v.SetDefault("strict_passwords", false)

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Auth: Auth{
			Secret:          v.GetString("secret"),
			SessionTTL:      v.GetDuration("session_ttl"),
			RatePerMin:      v.GetInt("auth_rate_per_min"),
			StrictPasswords: v.GetBool("strict_passwords"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad как Load, но паникует при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.DB.DatabaseURI == "" {
		return fmt.Errorf("DATABASE_URI не может быть пустым")
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("неизвестное окружение APP_ENV: %q", c.Env)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL должен быть положительным")
	}
	if c.Env == EnvProd && c.Auth.Secret == defaultSecret {
		return fmt.Errorf("SECRET обязателен в prod")
	}
	return nil
}
