package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from a yaml file; every key can be overridden by the
// MIDCAR_ prefixed variable named in its env tag.
type Config struct {
	Environment string `env:"MIDCAR_ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		Addr              string        `env:"ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		// WriteTimeout leaves room for PDF exports
		WriteTimeout time.Duration `env:"WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout  time.Duration `env:"IDLE_TIMEOUT"  env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds a whole request, spreadsheet imports included
		RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"  env-default:"30s"      yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"MAX_HEADER_BYTES" env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"METRICS_PATH"     env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins are the public site origins; empty allows any
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `env-prefix:"MIDCAR_HTTP_" yaml:"http"`

	Database struct {
		Host               string        `env:"HOST"                 env-default:"localhost" yaml:"host"`
		Port               int           `env:"PORT"                 env-default:"5432"      yaml:"port"`
		DatabaseName       string        `env:"NAME"                 env-default:"midcar"    yaml:"name"`
		Username           string        `env:"USERNAME"             env-default:"midcar"    yaml:"username"`
		Password           string        `env:"PASSWORD"             env-default:"midcar"    yaml:"password"`
		SslMode            string        `env:"SSL_MODE"             env-default:"disable"   yaml:"sslMode"`
		MaxOpenConnections int           `env:"MAX_OPEN_CONNECTIONS" env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"MAX_IDLE_CONNECTIONS" env-default:"4"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"CONN_MAX_LIFETIME"    env-default:"30m"       yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"CONN_MAX_IDLE_TIME"   env-default:"5m"        yaml:"connMaxIdleTime"`
	} `env-prefix:"MIDCAR_DATABASE_" yaml:"database"`

	// JWT holds the RS256 keys of staff tokens. Only the jwt command needs
	// the private key.
	JWT struct {
		PublicKey  string `env:"PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"PRIVATE_KEY" yaml:"privateKey"`
	} `env-prefix:"MIDCAR_JWT_" yaml:"jwt"`

	Worker struct {
		// Enabled runs the job processors inside serve. With it off, serve
		// still enqueues and another instance does the work.
		Enabled        bool `env:"ENABLED"          env-default:"true" yaml:"enabled"`
		MaxWorkers     int  `env:"MAX_WORKERS"      env-default:"5"    yaml:"maxWorkers"`
		VINMaxAttempts int  `env:"VIN_MAX_ATTEMPTS" env-default:"5"    yaml:"vinMaxAttempts"`
	} `env-prefix:"MIDCAR_WORKER_" yaml:"worker"`

	// VIN configures the vPIC decoder client.
	VIN struct {
		BaseURL  string        `env:"BASE_URL"  env-default:"https://vpic.nhtsa.dot.gov/api/vehicles" yaml:"baseUrl"`
		Timeout  time.Duration `env:"TIMEOUT"   env-default:"10s"                                     yaml:"timeout"`
		Retries  uint          `env:"RETRIES"   env-default:"3"                                       yaml:"retries"`
		CacheTTL time.Duration `env:"CACHE_TTL" env-default:"24h"                                     yaml:"cacheTtl"`
	} `env-prefix:"MIDCAR_VIN_" yaml:"vin"`

	// Photos is the S3 compatible bucket holding vehicle photos.
	Photos struct {
		Bucket          string `env:"BUCKET"            env-default:"midcar-photos" yaml:"bucket"`
		Region          string `env:"REGION"            env-default:"eu-west-1"     yaml:"region"`
		Endpoint        string `env:"ENDPOINT"          yaml:"endpoint"`
		AccessKeyID     string `env:"ACCESS_KEY_ID"     yaml:"accessKeyId"`
		SecretAccessKey string `env:"SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		PublicBaseURL   string `env:"PUBLIC_BASE_URL"   yaml:"publicBaseUrl"`
		PathStyle       bool   `env:"PATH_STYLE"        env-default:"false"         yaml:"pathStyle"`
		MaxBytes        int64  `env:"MAX_BYTES"         env-default:"10485760"      yaml:"maxBytes"`
	} `env-prefix:"MIDCAR_PHOTOS_" yaml:"photos"`

	Dashboard struct {
		CacheTTL time.Duration `env:"CACHE_TTL" env-default:"1m" yaml:"cacheTtl"`
	} `env-prefix:"MIDCAR_DASHBOARD_" yaml:"dashboard"`

	GracefulShutdownTimeout time.Duration `env:"MIDCAR_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port %d is out of range", c.Database.Port))
	}
	if c.Worker.MaxWorkers < 1 {
		errs = append(errs, errors.New("worker.maxWorkers must be at least 1"))
	}
	if c.Worker.VINMaxAttempts < 1 {
		errs = append(errs, errors.New("worker.vinMaxAttempts must be at least 1"))
	}
	if c.Photos.MaxBytes <= 0 {
		errs = append(errs, errors.New("photos.maxBytes must be positive"))
	}
	if c.Environment == "production" && c.JWT.PublicKey == "" {
		errs = append(errs, errors.New("jwt.publicKey is required in production"))
	}

	return errors.Join(errs...)
}

// Load reads configPath, applies the environment overrides and validates
// the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &cfg, nil
}
