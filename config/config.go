package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/baasic/errors"
	"github.com/kbukum/baasic/httpclient"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/validation"
)

// Default values.
const (
	DefaultAPIRootURL = "api.baasic.com"
	DefaultAPIVersion = "v1"
	DefaultTimeout    = 30 * time.Second
	DefaultPageSize   = 10
)

// Config is the client configuration.
type Config struct {
	// APIKey is the Baasic application identifier; it becomes the last
	// segment of every API URL.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`

	// APIRootURL is the API host, without scheme.
	APIRootURL string `yaml:"api_root_url" mapstructure:"api_root_url" validate:"required"`

	APIVersion string `yaml:"api_version" mapstructure:"api_version" validate:"required"`

	// Insecure switches the scheme to plain http.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`

	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`

	Paging Paging `yaml:"paging" mapstructure:"paging"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// Paging holds the defaults injected into find requests.
type Paging struct {
	PageSize int    `yaml:"page_size" mapstructure:"page_size" validate:"gte=0"`
	Sort     string `yaml:"sort" mapstructure:"sort"`
}

// Default returns a Config with every default applied and no API key.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.APIRootURL == "" {
		c.APIRootURL = DefaultAPIRootURL
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Paging.PageSize == 0 {
		c.Paging.PageSize = DefaultPageSize
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration. Errors carry code INVALID_CONFIG.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return configError(err)
	}
	if err := validation.New().Host("api_root_url", c.APIRootURL).Err(); err != nil {
		return configError(err)
	}
	if err := c.TLS.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}

func configError(err error) error {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return errors.InvalidConfig(appErr.Message).WithDetails(appErr.Details).WithCause(err)
}

// Scheme returns "https", or "http" when Insecure is set.
func (c *Config) Scheme() string {
	if c.Insecure {
		return "http"
	}
	return "https"
}

// BaseURL returns the API base URL: <scheme>://<root>/<version>/<apiKey>/.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s/%s/%s/",
		c.Scheme(),
		strings.Trim(c.APIRootURL, "/"),
		strings.Trim(c.APIVersion, "/"),
		strings.Trim(c.APIKey, "/"),
	)
}

// HTTPConfig derives the transport configuration.
func (c *Config) HTTPConfig() httpclient.Config {
	headers := make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		headers[k] = v
	}
	return httpclient.Config{
		Name:    "baasic",
		BaseURL: c.BaseURL(),
		Timeout: c.Timeout,
		TLS:     c.TLS,
		Headers: headers,
	}
}
