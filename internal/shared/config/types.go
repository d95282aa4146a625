package config

import (
	"fmt"
	"path/filepath"
)

type AppConfig struct {
	Env  string `mapstructure:"env" yaml:"env" validate:"omitempty,oneof=development test production"`
	Mode string `mapstructure:"mode" yaml:"mode" validate:"omitempty,oneof=debug release"`
}

type StoreConfig struct {
	DataDir           string `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	FileName          string `mapstructure:"file_name" yaml:"file_name" validate:"required"`
	MigrationStrategy string `mapstructure:"migration_strategy" yaml:"migration_strategy" validate:"oneof=goose golang_migrate gorm_auto_migrate"`
	BusyTimeoutMillis int    `mapstructure:"busy_timeout_ms" yaml:"busy_timeout_ms" validate:"gte=0"`
}

// Path returns the absolute location of the SQLite database file.
func (s *StoreConfig) Path() string {
	return filepath.Join(s.DataDir, s.FileName)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

// RedisConfig configures the optional local event feed. The feed is off
// unless Enabled is set.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"host" yaml:"host" validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db" validate:"gte=0"`
	Channel  string `mapstructure:"channel" yaml:"channel"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
