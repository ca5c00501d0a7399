package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
)

// AuthProvider defines an interface for authentication providers.
// Different authentication mechanisms can implement this interface to be used
// with the Authentication middleware.
type AuthProvider interface {
	// Authenticate examines the request for authentication credentials and
	// validates them according to the provider's implementation.
	// Returns true if the request is authenticated, false otherwise.
	Authenticate(r *http.Request) bool
}

// BasicAuthProvider provides HTTP Basic Authentication.
// It validates username and password credentials against a predefined map.
type BasicAuthProvider struct {
	Credentials map[string]string // username -> password
}

// Authenticate authenticates a request using HTTP Basic Authentication.
// It extracts the username and password from the Authorization header and
// validates them against the stored credentials.
func (p *BasicAuthProvider) Authenticate(r *http.Request) bool {
	username, password, ok := r.BasicAuth()
	if !ok {
		return false
	}

	expectedPassword, exists := p.Credentials[username]
	if !exists {
		return false
	}

	return password == expectedPassword
}

// BearerTokenProvider provides Bearer Token Authentication.
// It can validate tokens against a predefined map or using a custom validator
// function.
type BearerTokenProvider struct {
	ValidTokens map[string]bool         // token -> valid
	Validator   func(token string) bool // optional token validator
}

// Authenticate authenticates a request using Bearer Token Authentication.
// It extracts the token from the Authorization header and validates it using
// either the validator function (if provided) or the ValidTokens map.
func (p *BearerTokenProvider) Authenticate(r *http.Request) bool {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if p.Validator != nil {
		return p.Validator(token)
	}
	return p.ValidTokens[token]
}

// Authentication creates a middleware that guards the rest of the pipeline
// with the given provider. Unauthenticated requests are short-circuited with
// a fresh challenge response; the continuation runs only for authenticated
// requests. A new response is built per request so that wrapping middleware
// may mutate it freely.
func Authentication(provider AuthProvider, challenge func() *common.Response) pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		if !provider.Authenticate(r) {
			return challenge(), nil
		}
		return next.Invoke(r)
	})
}

// BasicAuth creates an Authentication middleware using HTTP Basic
// Authentication. Unauthenticated requests receive a 401 response carrying a
// WWW-Authenticate challenge for the given realm.
func BasicAuth(credentials map[string]string, realm string) pipeline.Middleware {
	provider := &BasicAuthProvider{Credentials: credentials}
	return Authentication(provider, func() *common.Response {
		return common.NewResponse(http.StatusUnauthorized).
			WithString("Unauthorized").
			WithHeader("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	})
}
