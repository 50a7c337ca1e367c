package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

// BasicAuth guards operator endpoints with a static credential table.
type BasicAuth struct {
	users map[string]string
}

func NewBasicAuth(users map[string]string) *BasicAuth {
	if users == nil {
		users = make(map[string]string)
	}
	return &BasicAuth{users: users}
}

func (ba *BasicAuth) Enabled() bool {
	return len(ba.users) > 0
}

func (ba *BasicAuth) validate(username, password string) bool {
	stored, exists := ba.users[username]
	if !exists {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func parseBasic(authHeader string) (username, password string, err error) {
	if authHeader == "" {
		return "", "", ErrMissingAuthHeader
	}

	const basicPrefix = "Basic "
	if !strings.HasPrefix(authHeader, basicPrefix) {
		return "", "", ErrUnsupportedAuthType
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, basicPrefix))
	if err != nil {
		return "", "", ErrInvalidAuthHeader
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrInvalidAuthHeader
	}

	return username, password, nil
}

// Authenticate validates the Authorization header and returns the username.
func (ba *BasicAuth) Authenticate(authHeader string) (string, error) {
	username, password, err := parseBasic(authHeader)
	if err != nil {
		return "", err
	}

	if !ba.validate(username, password) {
		return "", ErrInvalidCredentials
	}

	return username, nil
}

// Middleware validates Basic Auth. A BasicAuth without users lets every request through.
func (ba *BasicAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	if !ba.Enabled() {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ba.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), username)))
	}
}
