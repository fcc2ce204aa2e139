package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/baasic/errors"
	"github.com/kbukum/baasic/httpclient"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{APIKey: "app"}
	cfg.ApplyDefaults()

	if cfg.APIRootURL != "api.baasic.com" || cfg.APIVersion != "v1" {
		t.Errorf("unexpected defaults %q %q", cfg.APIRootURL, cfg.APIVersion)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.Paging.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.Paging.PageSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults, got %+v", cfg.Logging)
	}
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"defaults", Config{APIKey: "my-app", APIRootURL: "api.baasic.com", APIVersion: "v1"}, "https://api.baasic.com/v1/my-app/"},
		{"insecure", Config{APIKey: "a", APIRootURL: "localhost:8080", APIVersion: "beta", Insecure: true}, "http://localhost:8080/beta/a/"},
		{"trims slashes", Config{APIKey: "/a/", APIRootURL: "api.baasic.com/", APIVersion: "/v1/"}, "https://api.baasic.com/v1/a/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Default()
	valid.APIKey = "app"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing api key", func(c *Config) { c.APIKey = "" }, "api_key: is required"},
		{"scheme in root", func(c *Config) { c.APIRootURL = "https://api.baasic.com" }, "api_root_url: must not include a scheme"},
		{"negative page size", func(c *Config) { c.Paging.PageSize = -1 }, "paging.page_size"},
		{"bad tls", func(c *Config) { c.TLS = &httpclient.TLSConfig{KeyFile: "k.pem"} }, "cert_file and key_file"},
		{"bad logging", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestConfig_HTTPConfig(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "app"
	cfg.Headers = map[string]string{"X-Tenant": "t1"}

	hc := cfg.HTTPConfig()
	if hc.BaseURL != "https://api.baasic.com/v1/app/" || hc.Timeout != 30*time.Second {
		t.Errorf("unexpected http config %+v", hc)
	}
	hc.Headers["X-Tenant"] = "changed"
	if cfg.Headers["X-Tenant"] != "t1" {
		t.Error("HTTPConfig must copy headers")
	}
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baasic.yml")
	yaml := `
api_key: from-file
timeout: 5s
paging:
  page_size: 25
  sort: "dateCreated|desc"
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BAASIC_API_VERSION", "beta")
	t.Setenv("BAASIC_PAGING_SORT", "name|asc")

	var cfg Config
	if err := Load("baasic", &cfg, WithConfigFile(path), WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "from-file" {
		t.Errorf("expected api key from file, got %q", cfg.APIKey)
	}
	if cfg.APIVersion != "beta" {
		t.Errorf("expected env override, got %q", cfg.APIVersion)
	}
	if cfg.Paging.PageSize != 25 || cfg.Paging.Sort != "name|asc" {
		t.Errorf("unexpected paging %+v", cfg.Paging)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.APIRootURL != "api.baasic.com" {
		t.Errorf("expected default root, got %q", cfg.APIRootURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("BAASIC_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BAASIC_API_KEY", "")
	os.Unsetenv("BAASIC_API_KEY")

	var cfg Config
	if err := Load("baasic", &cfg, WithSearchDirs(dir)); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "from-dotenv" {
		t.Errorf("expected api key from .env, got %q", cfg.APIKey)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("BAASIC_API_KEY", "")

	var cfg Config
	err := Load("baasic", &cfg, WithSearchDirs(t.TempDir()))
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baasic.yml")
	if err := os.WriteFile(path, []byte("api_key: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := Load("baasic", &cfg, WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

type mockFS struct {
	files map[string]bool
}

func (m mockFS) Exists(path string) bool    { return m.files[path] }
func (m mockFS) LoadEnv(path string) error { return nil }

func TestResolve(t *testing.T) {
	fs := mockFS{files: map[string]bool{
		filepath.Join("config", "baasic.yml"): true,
		"config.yml":                          true,
		filepath.Join("config", ".env"):       true,
		".env.baasic":                         true,
	}}

	got := Resolve("baasic", LoaderConfig{FileSystem: fs})
	if got.ConfigFile != filepath.Join("config", "baasic.yml") {
		t.Errorf("expected named file to win over config.yml, got %q", got.ConfigFile)
	}
	if got.EnvFile != ".env.baasic" {
		t.Errorf("expected .env.baasic, got %q", got.EnvFile)
	}

	explicit := Resolve("baasic", LoaderConfig{FileSystem: fs, ConfigFile: "x.yml", EnvFile: "y.env"})
	if explicit.ConfigFile != "x.yml" || explicit.EnvFile != "y.env" {
		t.Errorf("explicit paths not kept: %+v", explicit)
	}

	none := Resolve("baasic", LoaderConfig{FileSystem: mockFS{}})
	if none.ConfigFile != "" || none.EnvFile != "" {
		t.Errorf("expected nothing resolved, got %+v", none)
	}
}
