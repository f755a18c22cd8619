// config предоставляет структуру конфигурации сервиса BanglaGhar
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Mongo     MongoConfig     `yaml:"mongo"`
	S3        S3Config        `yaml:"s3"`
	Auth      AuthConfig      `yaml:"auth"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Ably      AblyConfig      `yaml:"ably"`
	AI        AIConfig        `yaml:"ai"`
	Uploads   UploadsConfig   `yaml:"uploads"`
	Featured  FeaturedConfig  `yaml:"featured"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"5001"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"5090"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// MongoConfig — подключение к MongoDB.
type MongoConfig struct {
	URI            string        `yaml:"uri" env:"MONGO_URI" env-required:"true"`
	Database       string        `yaml:"database" env:"MONGO_DATABASE" env-default:"banglaghar"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// S3Config — S3-совместимое хранилище (фото объявлений, документы).
type S3Config struct {
	Endpoint     string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser     string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket       string        `yaml:"bucket" env:"S3_BUCKET" env-required:"true"`
	UseSSL       bool          `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
	PublicURL    string        `yaml:"public_url" env:"S3_PUBLIC_URL"`
	PresignTTL   time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
}

// AuthConfig — проверка токенов AWS Cognito.
type AuthConfig struct {
	CognitoRegion string        `yaml:"cognito_region" env:"COGNITO_REGION" env-required:"true"`
	UserPoolID    string        `yaml:"user_pool_id" env:"COGNITO_USER_POOL_ID" env-required:"true"`
	JWKSTTL       time.Duration `yaml:"jwks_ttl" env:"JWKS_TTL" env-default:"1h"`
}

// Issuer возвращает ожидаемый iss токенов пула.
func (a AuthConfig) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", a.CognitoRegion, a.UserPoolID)
}

// JWKSURL — адрес набора ключей пула.
func (a AuthConfig) JWKSURL() string {
	return a.Issuer() + "/.well-known/jwks.json"
}

// GeocodingConfig — внешний геокодер (OpenCage).
type GeocodingConfig struct {
	APIKey   string        `yaml:"api_key" env:"OPENCAGE_API_KEY" env-required:"true"`
	Endpoint string        `yaml:"endpoint" env:"OPENCAGE_ENDPOINT" env-default:"https://api.opencagedata.com/geocode/v1/json"`
	Timeout  time.Duration `yaml:"timeout" env:"OPENCAGE_TIMEOUT" env-default:"5s"`
}

// AblyConfig — доставка чат-уведомлений.
type AblyConfig struct {
	APIKey string `yaml:"api_key" env:"ABLY_API_KEY" env-required:"true"`
}

// AIConfig — генерация описаний объявлений.
type AIConfig struct {
	APIKey  string        `yaml:"api_key" env:"AI_API_KEY" env-required:"true"`
	BaseURL string        `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.together.xyz/v1"`
	Model   string        `yaml:"model" env:"AI_MODEL" env-default:"mistralai/Mistral-7B-Instruct-v0.2"`
	Timeout time.Duration `yaml:"timeout" env:"AI_TIMEOUT" env-default:"30s"`
}

// UploadsConfig — ограничения на загружаемые объекты.
type UploadsConfig struct {
	PhotoMaxSizeBytes        int64    `yaml:"photo_max_size_bytes" env:"PHOTO_MAX_SIZE_BYTES" env-default:"10485760"`
	PhotoAllowedContentTypes []string `yaml:"photo_allowed_content_types" env:"PHOTO_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp"`
	GovtIDMaxSizeBytes       int64    `yaml:"govt_id_max_size_bytes" env:"GOVT_ID_MAX_SIZE_BYTES" env-default:"5242880"`
	GovtIDContentTypes       []string `yaml:"govt_id_allowed_content_types" env:"GOVT_ID_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,application/pdf"`
}

// FeaturedConfig — витрина «featured»-объявлений.
type FeaturedConfig struct {
	Limit int `yaml:"limit" env:"FEATURED_LIMIT" env-default:"25"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Host == "" {
		return fmt.Errorf("http.host is required")
	}

	if c.HTTP.Port == "" {
		return fmt.Errorf("http.port is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}

	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}

	if c.S3.RootUser == "" {
		return fmt.Errorf("s3.root_user is required")
	}

	if c.S3.RootPassword == "" {
		return fmt.Errorf("s3.root_password is required")
	}

	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required")
	}

	if c.S3.PresignTTL <= 0 {
		c.S3.PresignTTL = 10 * time.Minute
	}

	if c.Auth.CognitoRegion == "" {
		return fmt.Errorf("auth.cognito_region is required")
	}

	if c.Auth.UserPoolID == "" {
		return fmt.Errorf("auth.user_pool_id is required")
	}

	if c.Auth.JWKSTTL <= 0 {
		c.Auth.JWKSTTL = time.Hour
	}

	if c.Geocoding.APIKey == "" {
		return fmt.Errorf("geocoding.api_key is required")
	}

	if c.Geocoding.Endpoint == "" {
		return fmt.Errorf("geocoding.endpoint is required")
	}

	if c.Ably.APIKey == "" {
		return fmt.Errorf("ably.api_key is required")
	}

	if c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required")
	}

	if c.Featured.Limit <= 0 {
		c.Featured.Limit = 25
	}

	if c.Uploads.PhotoMaxSizeBytes <= 0 {
		c.Uploads.PhotoMaxSizeBytes = 10 * 1024 * 1024
	}

	if c.Uploads.GovtIDMaxSizeBytes <= 0 {
		c.Uploads.GovtIDMaxSizeBytes = 5 * 1024 * 1024
	}

	if len(c.Uploads.PhotoAllowedContentTypes) == 0 {
		return fmt.Errorf("uploads.photo_allowed_content_types must not be empty")
	}

	if len(c.Uploads.GovtIDContentTypes) == 0 {
		return fmt.Errorf("uploads.govt_id_allowed_content_types must not be empty")
	}

	return nil
}
