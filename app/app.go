package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/baasic/component"
	"github.com/kbukum/baasic/config"
	"github.com/kbukum/baasic/httpclient"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/login"
	"github.com/kbukum/baasic/observability"
	"github.com/kbukum/baasic/params"
	"github.com/kbukum/baasic/userprofile/avatar"
	"github.com/kbukum/baasic/valueset"
	"github.com/kbukum/baasic/version"
)

// Name is the component name of an App.
const Name = "baasic"

// DefaultAccept is sent unless the config overrides Accept.
const DefaultAccept = "application/json"

// App is a configured client.
type App struct {
	cfg       config.Config
	log       *logger.Logger
	store     login.TokenStore
	transport *httpclient.Adapter

	login   *login.Service
	items   *valueset.ItemService
	avatars *avatar.Service
}

var (
	_ component.Component   = (*App)(nil)
	_ component.Describable = (*App)(nil)
)

// New creates an App from cfg. It applies defaults and validates the config.
func New(cfg config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)

	log := o.logger
	if log == nil {
		log = logger.New(cfg.Logging, version.Product)
	}
	inst := o.instrumentation
	if inst == nil {
		var err error
		if inst, err = observability.New(); err != nil {
			return nil, fmt.Errorf("instrumentation: %w", err)
		}
	}
	store := o.store
	if store == nil {
		store = login.NewMemoryStore()
	}

	httpCfg := cfg.HTTPConfig()
	setDefaultHeader(httpCfg.Headers, "User-Agent", version.UserAgent())
	setDefaultHeader(httpCfg.Headers, "Accept", DefaultAccept)
	httpCfg.Auth = httpclient.SourceAuth(store)

	adapterOpts := []httpclient.Option{
		httpclient.WithInstrumentation(inst),
		httpclient.WithLogger(log),
	}
	if o.roundTripper != nil {
		adapterOpts = append(adapterOpts, httpclient.WithRoundTripper(o.roundTripper))
	}
	transport, err := httpclient.New(httpCfg, adapterOpts...)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		log:       log,
		store:     store,
		transport: transport,
		login:     login.NewService(transport, login.WithStore(store), login.WithLogger(log)),
		items: valueset.NewItemService(transport,
			valueset.WithDefaults(params.Defaults{PageSize: cfg.Paging.PageSize, Sort: cfg.Paging.Sort}),
			valueset.WithLogger(log),
		),
		avatars: avatar.NewService(transport, avatar.WithLogger(log)),
	}
	log.Debug("client configured", logger.Fields("base_url", httpCfg.BaseURL, "version", version.GetShortVersion()))
	return a, nil
}

// Load reads the configuration named name with config.Load and creates an
// App from it.
func Load(name string, loaderOpts []config.LoaderOption, opts ...Option) (*App, error) {
	var cfg config.Config
	if err := config.Load(name, &cfg, loaderOpts...); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

func setDefaultHeader(h map[string]string, key, value string) {
	for k := range h {
		if http.CanonicalHeaderKey(k) == key {
			return
		}
	}
	h[key] = value
}

// Config returns the effective configuration.
func (a *App) Config() config.Config { return a.cfg }

// Logger returns the client logger.
func (a *App) Logger() *logger.Logger { return a.log }

// Transport returns the shared HTTP transport.
func (a *App) Transport() *httpclient.Adapter { return a.transport }

// TokenStore returns the token store shared by login and the transport.
func (a *App) TokenStore() login.TokenStore { return a.store }

// Login returns the login service.
func (a *App) Login() *login.Service { return a.login }

// ValueSetItems returns the value-set item service.
func (a *App) ValueSetItems() *valueset.ItemService { return a.items }

// Avatars returns the user-profile avatar service.
func (a *App) Avatars() *avatar.Service { return a.avatars }

// Name implements component.Component.
func (a *App) Name() string { return Name }

// Start implements component.Component. The client needs no warm-up.
func (a *App) Start(ctx context.Context) error {
	a.log.WithContext(ctx).Info("client started", logger.Fields("base_url", a.transport.Config().BaseURL))
	return nil
}

// Stop releases idle connections.
func (a *App) Stop(ctx context.Context) error {
	a.log.WithContext(ctx).Info("client stopped")
	return a.transport.Close(ctx)
}

// Health reports degraded while no usable access token is stored. The
// client still serves anonymous calls in that state.
func (a *App) Health(_ context.Context) component.Health {
	h := component.Health{Name: Name, Status: component.StatusHealthy}
	if _, _, ok := a.store.AccessToken(); !ok {
		h.Status = component.StatusDegraded
		h.Message = "not signed in"
	}
	return h
}

// Describe implements component.Describable.
func (a *App) Describe() component.Description {
	return component.Description{
		Name:    "Baasic API",
		Type:    "http-client",
		Details: fmt.Sprintf("%s timeout=%s", a.transport.Config().BaseURL, a.transport.Config().Timeout),
	}
}
