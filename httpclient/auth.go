package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthToken sends "<scheme> <token>" in the Authorization header.
	AuthToken
	// AuthTokenSource reads the scheme and token on every request.
	AuthTokenSource
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthCustom uses a custom authentication function.
	AuthCustom
)

// TokenSource supplies the current access token. ok is false when no user is
// signed in, in which case no Authorization header is sent.
type TokenSource interface {
	AccessToken() (scheme, token string, ok bool)
}

// AuthConfig configures request authentication.
type AuthConfig struct {
	Type     AuthType
	Scheme   string
	Token    string
	Source   TokenSource
	Username string
	Password string
	Apply    func(*http.Request)
}

// BearerAuth creates a static bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthToken, Scheme: "Bearer", Token: token}
}

// TokenAuth creates a static token auth config with an explicit scheme.
func TokenAuth(scheme, token string) *AuthConfig {
	return &AuthConfig{Type: AuthToken, Scheme: scheme, Token: token}
}

// SourceAuth reads the token from src on every request.
func SourceAuth(src TokenSource) *AuthConfig {
	return &AuthConfig{Type: AuthTokenSource, Source: src}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// NoAuth disables adapter-level auth for a single request.
func NoAuth() *AuthConfig {
	return &AuthConfig{Type: AuthNone}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthToken:
		setToken(req, a.Scheme, a.Token)
	case AuthTokenSource:
		if a.Source == nil {
			return
		}
		if scheme, token, ok := a.Source.AccessToken(); ok {
			setToken(req, scheme, token)
		}
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}

func setToken(req *http.Request, scheme, token string) {
	if token == "" {
		return
	}
	if scheme == "" {
		scheme = "Bearer"
	}
	req.Header.Set("Authorization", scheme+" "+token)
}
