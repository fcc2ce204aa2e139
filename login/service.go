package login

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/kbukum/baasic/httpclient"
	"github.com/kbukum/baasic/httpclient/rest"
	"github.com/kbukum/baasic/logger"
	"github.com/kbukum/baasic/route"
	"github.com/kbukum/baasic/validation"
)

// Header values the login endpoint expects.
const (
	FormContentType = "application/x-www-form-urlencoded; charset=UTF-8"
	JSONAccept      = "application/json; charset=UTF-8"
)

// Routes are the login route templates.
type Routes struct {
	Login *route.Template
}

var defaultRoutes = Routes{
	Login: route.MustParse("login/{?withSession,embed,fields}"),
}

// Service is the login API.
type Service struct {
	transport rest.Transport
	store     TokenStore
	log       *logger.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStore sets the token store. Defaults to a new MemoryStore sharing the
// service clock.
func WithStore(store TokenStore) Option {
	return func(s *Service) { s.store = store }
}

// WithLogger sets the service logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock overrides the time source used to compute token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a login service.
func NewService(transport rest.Transport, opts ...Option) *Service {
	s := &Service{
		transport: transport,
		log:       logger.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = NewMemoryStore(WithStoreClock(s.now))
	}
	s.log = s.log.WithComponent("login")
	return s
}

// Routes returns the route templates the service expands.
func (s *Service) Routes() Routes {
	return defaultRoutes
}

// Store returns the token store.
func (s *Service) Store() TokenStore {
	return s.store
}

// Login exchanges credentials for an access token with a server session and
// stores it.
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	if err := validation.New().
		Required("username", username).
		Required("password", password).
		Err(); err != nil {
		return nil, err
	}

	u := defaultRoutes.Login.Expand(route.Params{"withSession": true})
	s.log.WithContext(ctx).Debug("resolved route", logger.Fields(logger.FieldOperation, "login", logger.FieldURL, u))

	resp, err := rest.Post[Token](ctx, s.transport, u, credentialsBody(username, password),
		rest.WithHeader("Content-Type", FormContentType),
		rest.WithAuth(httpclient.NoAuth()),
	)
	if err != nil {
		s.log.WithContext(ctx).Warn("login failed", logger.ErrorFields("login", err))
		return nil, err
	}

	token := resp.Data
	token.ExpiresAt = expiry(&token, s.now())
	s.store.SetToken(&token)

	s.log.WithContext(ctx).Info("user logged in", logger.Fields("username", username, "expires_at", token.ExpiresAt))
	return &token, nil
}

// credentialsBody builds the password grant form, keeping the
// grant_type, username, password order.
func credentialsBody(username, password string) string {
	return "grant_type=password&username=" + url.QueryEscape(username) + "&password=" + url.QueryEscape(password)
}

// LoadUserData returns the profile of the signed-in user.
func (s *Service) LoadUserData(ctx context.Context) (*User, error) {
	u := defaultRoutes.Login.Expand(nil)
	resp, err := rest.Get[User](ctx, s.transport, u, rest.WithHeader("Accept", JSONAccept))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// logoutRequest is the DELETE body the endpoint expects.
type logoutRequest struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// Logout ends the session of token and clears the store. An empty token
// means the stored one.
func (s *Service) Logout(ctx context.Context, token, tokenType string) error {
	if token == "" {
		if t, ok := s.store.Token(); ok {
			token, tokenType = t.AccessToken, t.TokenType
		}
	}
	if err := validation.Required("token", token); err != nil {
		return err
	}

	u := defaultRoutes.Login.Expand(nil)
	_, err := rest.Send[struct{}](ctx, s.transport, http.MethodDelete, u, logoutRequest{Token: token, Type: tokenType})
	if err != nil {
		return err
	}

	s.store.Clear()
	s.log.WithContext(ctx).Info("user logged out")
	return nil
}
