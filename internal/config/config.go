package config

// Config holds all application configuration, grouped per component.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Digest  DigestConfig  `mapstructure:"digest"  validate:"required"`
	Mail    MailConfig    `mapstructure:"mail"`
	Weather WeatherConfig `mapstructure:"weather" validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig locates the durable documents on disk.
type StorageConfig struct {
	TasksFile    string `mapstructure:"tasks_file"    validate:"required"`
	AccountsFile string `mapstructure:"accounts_file" validate:"required"`
	ExportDir    string `mapstructure:"export_dir"    validate:"required"`
}

// AuthConfig contains session token settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// DigestConfig controls the daily digest trigger.
type DigestConfig struct {
	Hour     int    `mapstructure:"hour"     validate:"gte=0,lte=23"`
	Minute   int    `mapstructure:"minute"   validate:"gte=0,lte=59"`
	Timezone string `mapstructure:"timezone" validate:"required"`
	Enabled  bool   `mapstructure:"enabled"`
}

// MailConfig carries the SMTP relay settings. The credentials come from
// the environment (TEAMCAL_MAIL_USERNAME / TEAMCAL_MAIL_PASSWORD); they
// are only required when the digest is enabled, which Load enforces.
type MailConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	MaxRetries int    `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// WeatherConfig controls the forecast client.
type WeatherConfig struct {
	BaseURL         string  `mapstructure:"base_url"          validate:"required,url"`
	Latitude        float64 `mapstructure:"latitude"          validate:"gte=-90,lte=90"`
	Longitude       float64 `mapstructure:"longitude"         validate:"gte=-180,lte=180"`
	Timezone        string  `mapstructure:"timezone"          validate:"required"`
	ForecastDays    int     `mapstructure:"forecast_days"     validate:"required,gt=0,lte=16"`
	CacheTTLMinutes int     `mapstructure:"cache_ttl_minutes" validate:"required,gt=0"`
}
