package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	DatabaseDSN string
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod `mapstructure:"-"`
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether a MinIO endpoint was configured.
func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" }

const (
	envConfigName = "CONFIG_NAME"
	envConfigDir  = "CONFIG_DIR"

	envDSN = "DB_DSN"

	envJWTSecret    = "JWT_SECRET"
	envJWTExpiresIn = "JWT_EXPIRES_IN"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"
)

// NewConfig loads the server configuration. JWT_SECRET is mandatory.
func NewConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.JWT.Token == "" {
		return nil, fmt.Errorf("%s environment variable is not set", envJWTSecret)
	}

	log.Info("config parsed")
	return cfg, nil
}

// Load reads config/config.toml (if present), then applies environment overrides.
// Only the database DSN is required.
func Load() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv(envConfigName) != "" {
		configName = os.Getenv(envConfigName)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if dir := os.Getenv(envConfigDir); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8000)
	v.SetDefault("JWT.ExpiresIn", time.Hour)
	v.SetDefault("Redis.DialTimeout", 10*time.Second)
	v.SetDefault("Redis.ReadTimeout", 10*time.Second)
	v.SetDefault("Redis.Port", 6379)
	v.SetDefault("MinIO.Bucket", "game-images")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Warn("config file not found, using defaults and environment")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err = applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database DSN is empty: set %s or DatabaseDSN in the config file", envDSN)
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if dsn := os.Getenv(envDSN); dsn != "" {
		cfg.DatabaseDSN = dsn
	}

	if secret := os.Getenv(envJWTSecret); secret != "" {
		cfg.JWT.Token = secret
	}
	if exp := os.Getenv(envJWTExpiresIn); exp != "" {
		d, err := time.ParseDuration(exp)
		if err != nil {
			return fmt.Errorf("%s must be a duration: %w", envJWTExpiresIn, err)
		}
		cfg.JWT.ExpiresIn = d
	}

	if host := os.Getenv(envRedisHost); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv(envRedisPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("redis port must be int value: %w", err)
		}
		cfg.Redis.Port = p
	}
	if user := os.Getenv(envRedisUser); user != "" {
		cfg.Redis.User = user
	}
	if pass := os.Getenv(envRedisPass); pass != "" {
		cfg.Redis.Password = pass
	}

	if endpoint := os.Getenv(envMinIOEndpoint); endpoint != "" {
		cfg.MinIO.Endpoint = endpoint
	}
	if key := os.Getenv(envMinIOAccessKey); key != "" {
		cfg.MinIO.AccessKey = key
	}
	if secret := os.Getenv(envMinIOSecretKey); secret != "" {
		cfg.MinIO.SecretKey = secret
	}
	if bucket := os.Getenv(envMinIOBucket); bucket != "" {
		cfg.MinIO.Bucket = bucket
	}
	if ssl := os.Getenv(envMinIOUseSSL); ssl != "" {
		b, err := strconv.ParseBool(ssl)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", envMinIOUseSSL, err)
		}
		cfg.MinIO.UseSSL = b
	}

	return nil
}

// String masks secrets.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s:%d, JWT: *** expires %s, Redis: %s:%d, MinIO: %s}",
		c.ServiceHost, c.ServicePort, c.JWT.ExpiresIn, c.Redis.Host, c.Redis.Port, c.MinIO.Endpoint)
}
