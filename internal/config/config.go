package config

import (
	"strings"

	"github.com/spf13/viper"
)

type App struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"`
}

type Database struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type Redis struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type RabbitMQ struct {
	URL          string `mapstructure:"url"`
	ExchangeName string `mapstructure:"exchange_name"`
	RoutingKey   string `mapstructure:"routing_key"`
	EnableTLS    bool   `mapstructure:"enable_tls"`
}

type S3 struct {
	Endpoint         string `mapstructure:"endpoint"`
	Region           string `mapstructure:"region"`
	Bucket           string `mapstructure:"bucket"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	ForcePathStyle   bool   `mapstructure:"force_path_style"`
	PresignExpireSec int    `mapstructure:"presign_expire_sec"`
}

// Auth holds the bearer-token session settings. Tokens look like
// "ft_<secret>"; only the HMAC of the secret is ever stored.
type Auth struct {
	TokenPrefix  string `mapstructure:"token_prefix"`
	SecretPepper string `mapstructure:"secret_pepper"`
	TokenTTLSec  int    `mapstructure:"token_ttl_sec"`

	// Seed credentials for the dev admin account. Empty disables seeding.
	SeedUsername string `mapstructure:"seed_username"`
	SeedEmail    string `mapstructure:"seed_email"`
	SeedPassword string `mapstructure:"seed_password"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Telemetry struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

type Config struct {
	App       App       `mapstructure:"app"`
	HTTP      HTTP      `mapstructure:"http"`
	Database  Database  `mapstructure:"database"`
	Redis     Redis     `mapstructure:"redis"`
	RabbitMQ  RabbitMQ  `mapstructure:"rabbitmq"`
	S3        S3        `mapstructure:"s3"`
	Auth      Auth      `mapstructure:"auth"`
	Log       Log       `mapstructure:"log"`
	Telemetry Telemetry `mapstructure:"telemetry"`
}

// Load reads configuration from config.yaml (if present) and FT_* environment
// variables. Environment variables win, e.g. FT_DATABASE_DSN overrides
// database.dsn.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "fieldtrack")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.dsn", "host=localhost user=fieldtrack password=fieldtrack dbname=fieldtrack port=5432 sslmode=disable")
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "fieldtrack-input-data")
	v.SetDefault("s3.presign_expire_sec", 900)
	v.SetDefault("auth.token_prefix", "ft_")
	v.SetDefault("auth.token_ttl_sec", 86400)
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.sample_ratio", 1.0)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, env-only deployments are supported.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
