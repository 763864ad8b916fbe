package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from TEAMCAL_-prefixed environment variables, environment
// taking precedence. Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TEAMCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults carry it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Mail settings are only meaningful when the digest is on; validate
	// them conditionally so a digest-less deployment needs no relay.
	if cfg.Digest.Enabled {
		if cfg.Mail.Host == "" || cfg.Mail.Port == 0 || cfg.Mail.From == "" {
			return nil, fmt.Errorf("digest is enabled but mail host/port/from are not configured")
		}
		if cfg.Mail.Username == "" || cfg.Mail.Password == "" {
			return nil, fmt.Errorf("digest is enabled but mail credentials are not set " +
				"(TEAMCAL_MAIL_USERNAME / TEAMCAL_MAIL_PASSWORD)")
		}
	}

	return &cfg, nil
}

// setDefaults registers a default for every key. Viper only binds
// environment variables for keys it already knows about, so every key
// needs an entry here even when the default is zero.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("storage.tasks_file", "tasks.json")
	v.SetDefault("storage.accounts_file", "accounts.yaml")
	v.SetDefault("storage.export_dir", "excels")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 720)

	v.SetDefault("digest.hour", 0)
	v.SetDefault("digest.minute", 0)
	v.SetDefault("digest.timezone", "Asia/Seoul")
	v.SetDefault("digest.enabled", true)

	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.max_retries", 3)

	v.SetDefault("weather.base_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("weather.latitude", 37.566)
	v.SetDefault("weather.longitude", 126.9784)
	v.SetDefault("weather.timezone", "Asia/Tokyo")
	v.SetDefault("weather.forecast_days", 16)
	v.SetDefault("weather.cache_ttl_minutes", 60)
}
