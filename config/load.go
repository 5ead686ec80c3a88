package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	keyPort        = "app_port"
	keyDatabaseURL = "database_url"
	keyJWTSecret   = "jwt_secret"
	keyEnv         = "app_env"
	keyDBMaxConns  = "db_max_conns"

	devJWTSecret = "local_dev_secret"
)

// Load reads the optional YAML file at path and then the environment.
// Environment variables win over the file.
func Load(path string) (App, error) {
	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyEnv, "dev")
	v.SetDefault(keyDBMaxConns, 10)

	// PORT is what most PaaS runtimes inject.
	_ = v.BindEnv(keyPort, "APP_PORT", "PORT")
	_ = v.BindEnv(keyDatabaseURL, "DATABASE_URL")
	_ = v.BindEnv(keyJWTSecret, "JWT_SECRET")
	_ = v.BindEnv(keyEnv, "APP_ENV")
	_ = v.BindEnv(keyDBMaxConns, "DB_MAX_CONNS")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return App{}, errors.New("required config missing: DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return App{}, errors.New("required config missing: JWT_SECRET")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.DBMaxConns <= 0 {
		return App{}, fmt.Errorf("db_max_conns must be positive, got %d", cfg.DBMaxConns)
	}
	return cfg, nil
}
