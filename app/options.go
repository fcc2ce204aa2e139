package app

import (
	"net/http"

	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/login"
	"github.com/kbukum/baasic/observability"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger          *logger.Logger
	instrumentation *observability.Instrumentation
	store           login.TokenStore
	roundTripper    http.RoundTripper
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger.
// If not set, the logger is built from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithInstrumentation sets the tracing and metrics instrumentation.
// If not set, the otel global providers are used.
func WithInstrumentation(inst *observability.Instrumentation) Option {
	return func(o *appOptions) {
		o.instrumentation = inst
	}
}

// WithTokenStore sets the store the login service writes and the transport
// reads. Defaults to a login.MemoryStore.
func WithTokenStore(s login.TokenStore) Option {
	return func(o *appOptions) {
		o.store = s
	}
}

// WithRoundTripper replaces the HTTP transport, e.g. for tests.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *appOptions) {
		o.roundTripper = rt
	}
}
