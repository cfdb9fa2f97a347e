package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

const DefaultAdvisorModel = "gemini-3-flash-preview"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Advisor AdvisorConfig `yaml:"advisor"`

	// SeedDefaults carga un espacio y una planta de ejemplo cuando no hay datos.
	SeedDefaults bool `yaml:"seed_defaults"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`

	// Path: directorio (file) o archivo .db (sqlite).
	Path string `yaml:"path"`
	DSN  string `yaml:"dsn"`

	S3 S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
	Prefix    string `yaml:"prefix"`

	// Credenciales estáticas (MinIO). Vacías = cadena default de AWS.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type AdvisorConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{Addr: ":8080"},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "growbraz",
		},
		Storage: StorageConfig{Driver: DriverMemory},
		Advisor: AdvisorConfig{Model: DefaultAdvisorModel},

		SeedDefaults: true,
	}
}

// Load arma la config: defaults, luego archivo YAML (si path != ""), luego env.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	setBool := func(dst *bool, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = strings.EqualFold(v, "true") || v == "1"
		}
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.HTTP.Addr = ":" + v
	}
	set(&c.Log.Level, "LOG_LEVEL")
	set(&c.Log.Format, "LOG_FORMAT")
	set(&c.Log.App, "APP_NAME")

	set(&c.Storage.Driver, "STORAGE_DRIVER")
	set(&c.Storage.Path, "STORAGE_PATH")
	set(&c.Storage.DSN, "DB_DSN")
	set(&c.Storage.S3.Bucket, "S3_BUCKET")
	set(&c.Storage.S3.Region, "S3_REGION")
	set(&c.Storage.S3.Endpoint, "S3_ENDPOINT")
	set(&c.Storage.S3.Prefix, "S3_PREFIX")
	setBool(&c.Storage.S3.PathStyle, "S3_PATH_STYLE")
	set(&c.Storage.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	set(&c.Storage.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")

	// Única credencial del sistema; solo la consume el asesor.
	set(&c.Advisor.APIKey, "API_KEY")
	set(&c.Advisor.Model, "ADVISOR_MODEL")

	setBool(&c.SeedDefaults, "SEED_DEFAULTS")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("%w: http.addr required", ErrInvalidConfig)
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case DriverMemory, "":
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("%w: storage.path required for %s", ErrInvalidConfig, c.Storage.Driver)
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("%w: storage.dsn required for postgres", ErrInvalidConfig)
		}
	case DriverS3:
		if strings.TrimSpace(c.Storage.S3.Bucket) == "" {
			return fmt.Errorf("%w: storage.s3.bucket required for s3", ErrInvalidConfig)
		}
		if (c.Storage.S3.AccessKeyID == "") != (c.Storage.S3.SecretAccessKey == "") {
			return fmt.Errorf("%w: storage.s3 access key id and secret go together", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	return nil
}
