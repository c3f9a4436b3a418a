package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Topics     TopicsConfig     `yaml:"topics"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TopicsConfig holds topic board settings.
type TopicsConfig struct {
	DefaultPageLimit int           `yaml:"default_page_limit" env:"TOPICS_DEFAULT_PAGE_LIMIT" env-default:"20"`
	MaxPageLimit     int           `yaml:"max_page_limit"     env:"TOPICS_MAX_PAGE_LIMIT"     env-default:"100"`
	UpdateRetryDelay time.Duration `yaml:"update_retry_delay" env:"TOPICS_UPDATE_RETRY_DELAY" env-default:"20ms"`
}

// MigrationsConfig locates the SQL migrations applied by cmd/migrate.
// An empty Dir means the migrations embedded in the binary.
type MigrationsConfig struct {
	Dir string `yaml:"dir" env:"MIGRATIONS_DIR"`
}
