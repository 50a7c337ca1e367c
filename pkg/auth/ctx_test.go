package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeJWT(payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"RS256"}`)) + "." + enc.EncodeToString([]byte(payload)) + ".sig"
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	user, ok := UserFromContext(WithUser(context.Background(), "alice"))
	assert.True(t, ok)
	assert.Equal(t, "alice", user)

	// raw string keys must not collide with ours
	assert.Nil(t, WithUser(context.Background(), "alice").Value("authenticated_user"))
}

func TestTokenFromContext(t *testing.T) {
	_, ok := TokenFromContext(WithToken(context.Background(), ""))
	assert.False(t, ok)

	token, ok := TokenFromContext(WithToken(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "basic scheme", header: "Basic Zm9vOmJhcg==", wantErr: ErrUnsupportedAuthType},
		{name: "empty token", header: "Bearer   ", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearer(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{name: "subject claim", token: fakeJWT(`{"sub":"u-1","preferred_username":"alice"}`), want: "u-1", wantOK: true},
		{name: "username fallback", token: fakeJWT(`{"preferred_username":"alice"}`), want: "alice", wantOK: true},
		{name: "no claims", token: fakeJWT(`{}`), wantOK: false},
		{name: "opaque token", token: "opaque-token", wantOK: false},
		{name: "bad payload", token: "a.%%%.c", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Identity(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerMiddleware(t *testing.T) {
	var (
		gotToken string
		gotUser  string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken, _ = TokenFromContext(r.Context())
		gotUser, _ = UserFromContext(r.Context())
	})

	token := fakeJWT(`{"sub":"u-42"}`)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	BearerMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, token, gotToken)
	assert.Equal(t, "u-42", gotUser)
}

func TestRequireToken(t *testing.T) {
	handler := RequireToken(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler(rr, req.WithContext(WithToken(req.Context(), "abc")))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
