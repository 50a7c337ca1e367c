package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header format")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
)

const bearerPrefix = "Bearer "

// ParseBearer extracts the token of an "Authorization: Bearer <token>" header.
func ParseBearer(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrUnsupportedAuthType
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

type tokenClaims struct {
	Subject           string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
}

// Identity reads the subject of a JWT without verifying it. The backend owns
// verification; the result only partitions cache keys.
func Identity(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}

	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	if claims.Subject != "" {
		return claims.Subject, true
	}
	if claims.PreferredUsername != "" {
		return claims.PreferredUsername, true
	}
	return "", false
}

// BearerMiddleware stores the bearer token (and its identity, if any) in the request
// context. Requests without a token pass through untouched.
func BearerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := ParseBearer(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithToken(r.Context(), token)
		if id, ok := Identity(token); ok {
			ctx = WithUser(ctx, id)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireToken rejects requests that reached the handler without a bearer token.
func RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := TokenFromContext(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="cinecritique"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
