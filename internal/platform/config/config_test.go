package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "growbraz.yaml")
	yml := `
http:
  addr: ":9000"
storage:
  driver: sqlite
  path: /tmp/growbraz.db
advisor:
  model: gemini-custom
seed_defaults: false
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	t.Setenv("PORT", "9100")
	t.Setenv("API_KEY", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Addr != ":9100" {
		t.Fatalf("expected env PORT to win, got %q", cfg.HTTP.Addr)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.Path != "/tmp/growbraz.db" {
		t.Fatalf("unexpected storage: %#v", cfg.Storage)
	}
	if cfg.Advisor.Model != "gemini-custom" || cfg.Advisor.APIKey != "secret" {
		t.Fatalf("unexpected advisor: %#v", cfg.Advisor)
	}
	if cfg.SeedDefaults {
		t.Fatalf("expected seed_defaults=false from yaml")
	}
	if cfg.Log.App != "growbraz" {
		t.Fatalf("expected default app name, got %q", cfg.Log.App)
	}
}

func TestApplyEnv_S3(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"STORAGE_DRIVER": "s3",
		"S3_BUCKET":      "grow",
		"S3_PATH_STYLE":  "true",
		"S3_ENDPOINT":    "http://minio:9000",
		"SEED_DEFAULTS":  "0",

		"S3_ACCESS_KEY_ID":     "minio",
		"S3_SECRET_ACCESS_KEY": "minio123",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.Storage.S3.PathStyle || cfg.Storage.S3.Bucket != "grow" {
		t.Fatalf("unexpected s3 config: %#v", cfg.Storage.S3)
	}
	if cfg.Storage.S3.AccessKeyID != "minio" || cfg.Storage.S3.SecretAccessKey != "minio123" {
		t.Fatalf("static credentials not read from env")
	}
	if cfg.SeedDefaults {
		t.Fatalf("SEED_DEFAULTS=0 should disable seeds")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []Config{
		func() Config { c := Default(); c.Storage.Driver = "mongo"; return c }(),
		func() Config { c := Default(); c.Storage.Driver = DriverFile; return c }(),
		func() Config { c := Default(); c.Storage.Driver = DriverPostgres; return c }(),
		func() Config { c := Default(); c.Storage.Driver = DriverS3; return c }(),
		func() Config {
			c := Default()
			c.Storage.Driver = DriverS3
			c.Storage.S3.Bucket = "grow"
			c.Storage.S3.AccessKeyID = "minio"
			return c
		}(),
	}
	for i, c := range cases {
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}
