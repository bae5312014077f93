package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Minio    MinioConfig
	Upload   UploadConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint             string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName           string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey            string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey            string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	PartPresignedDuration time.Duration `envconfig:"MINIO_PART_PRESIGNED_DURATION" default:"10m"`
	UseSSL               bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	ContentType string        `envconfig:"UPLOAD_CONTENT_TYPE" default:"application/octet-stream"`
	ReapAfter   time.Duration `envconfig:"UPLOAD_REAP_AFTER" default:"24h"`
	ReapEvery   time.Duration `envconfig:"UPLOAD_REAP_EVERY" default:"1h"`
}

type NATSConfig struct {
	URL           string `envconfig:"NATS_URL" required:"true"`
	PublisherName string `envconfig:"NATS_PUBLISHER_NAME" default:"partflow-api"`
	Subject       string `envconfig:"NATS_SUBJECT" default:"uploads.events"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
