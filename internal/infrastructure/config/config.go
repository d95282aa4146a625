package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/footprint/internal/shared/config"
	"github.com/orris-inc/footprint/internal/shared/constants"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
)

type Config struct {
	App    sharedConfig.AppConfig    `mapstructure:"app" yaml:"app"`
	Store  sharedConfig.StoreConfig  `mapstructure:"store" yaml:"store"`
	Logger sharedConfig.LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Redis  sharedConfig.RedisConfig  `mapstructure:"redis" yaml:"redis"`
}

// Load reads configuration from an optional config.yaml and FOOTPRINT_*
// environment variables. When configPath is empty the file is searched in
// ./configs and the data directory; a missing file is not an error.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath(defaultDataDir())
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("app.env", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Store.DataDir = expandHome(config.Store.DataDir)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the struct tags of the whole configuration tree.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return apperrors.NewValidationError("invalid configuration", err.Error())
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", constants.EnvProduction)
	v.SetDefault("app.mode", "release")

	v.SetDefault("store.data_dir", defaultDataDir())
	v.SetDefault("store.file_name", constants.DefaultStoreFile)
	v.SetDefault("store.migration_strategy", "goose")
	v.SetDefault("store.busy_timeout_ms", 5000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", constants.DefaultEventChannel)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DefaultDataDirName
	}
	return filepath.Join(home, constants.DefaultDataDirName)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
