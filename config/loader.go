package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file lookups for testing.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

// Exists reports whether path exists.
func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads a .env file into the process environment. Variables that
// are already set are not overridden.
func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
	// Dirs are searched in order when no explicit file is given.
	Dirs []string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithSearchDirs replaces the default search directories.
func WithSearchDirs(dirs ...string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Dirs = dirs }
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// Resolve finds the config and env files for name.
func Resolve(name string, lc LoaderConfig) ResolvedFiles {
	dirs := lc.Dirs
	if len(dirs) == 0 {
		dirs = []string{".", "config"}
	}

	resolved := ResolvedFiles{ConfigFile: lc.ConfigFile, EnvFile: lc.EnvFile}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = firstExisting(lc.FileSystem, dirs, name+".yml", name+".yaml", "config.yml")
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = firstExisting(lc.FileSystem, dirs, ".env."+name, ".env")
	}
	return resolved
}

func firstExisting(fs FileSystem, dirs []string, names ...string) string {
	for _, n := range names {
		for _, d := range dirs {
			p := filepath.Join(d, n)
			if fs.Exists(p) {
				return p
			}
		}
	}
	return ""
}

// Load fills cfg from defaults, files and environment, then validates it.
// name selects the file names and the environment prefix ("baasic" reads
// baasic.yml and BAASIC_* variables).
func Load(name string, cfg *Config, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: RealFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}
	files := Resolve(name, lc)

	v := viper.New()
	setDefaults(v)

	if files.ConfigFile != "" {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return fmt.Errorf("config: load %s: %w", files.EnvFile, err)
		}
	}

	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api_key", "")
	v.SetDefault("api_root_url", d.APIRootURL)
	v.SetDefault("api_version", d.APIVersion)
	v.SetDefault("insecure", false)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("paging.page_size", d.Paging.PageSize)
	v.SetDefault("paging.sort", "")
	v.SetDefault("tls.skip_verify", false)
	v.SetDefault("tls.ca_file", "")
	v.SetDefault("tls.cert_file", "")
	v.SetDefault("tls.key_file", "")
	v.SetDefault("tls.server_name", "")
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", false)
	v.SetDefault("logging.caller", false)
}
