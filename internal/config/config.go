package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	Env        string `env:"ENV, default=development"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`
	JWTSecret  string `env:"JWT_SECRET, default=change-me"`
	UsersFile  string `env:"USERS_FILE, default=users.json"`

	MySQL MySQLConfig
	Redis RedisConfig
}

// MySQLConfig identifies the relational store, one field per connection
// parameter so deployments can override each independently.
type MySQLConfig struct {
	Host     string `env:"MYSQL_HOST, default=localhost"`
	Port     string `env:"MYSQL_PORT, default=3306"`
	User     string `env:"MYSQL_USER, default=root"`
	Password string `env:"MYSQL_PASSWORD, default=root"`
	Database string `env:"MYSQL_DATABASE, default=elective"`
}

// RedisConfig configures the list cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB, default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// Load builds Config from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// DSN renders the GORM MySQL connection string.
func (m MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}
