package middleware

import (
	"clementus360/gal-bestfriend/supabase"
	"clementus360/gal-bestfriend/types"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoOwner(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(OwnerFromContext(r.Context())))
}

func TestAuthMiddleware(t *testing.T) {
	h := AuthMiddleware("secret")(http.HandlerFunc(echoOwner))

	token, err := supabase.GenerateTestJWT("user-9", "secret")
	require.NoError(t, err)
	forged, err := supabase.GenerateTestJWT("user-9", "attacker-key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		want   string
	}{
		{"anonymous", "", http.StatusOK, ""},
		{"valid token", "Bearer " + token, http.StatusOK, "user-9"},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, ""},
		{"wrong signing key", "Bearer " + forged, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/chat", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.want, w.Body.String())
				return
			}
			var resp types.ChatResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "Unauthorized", resp.ErrorMessage)
		})
	}
}

func TestAuthMiddleware_NoSecretIgnoresTokens(t *testing.T) {
	h := AuthMiddleware("")(http.HandlerFunc(echoOwner))

	token, err := supabase.GenerateTestJWT("user-9", "anything")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/chat", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	h := CORSMiddleware("https://gal.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/chat", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://gal.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}

func TestChainAndLogging(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mark("a"), LoggingMiddleware, mark("b"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/themes", nil))

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", func() string {
		w := httptest.NewRecorder()
		CORSMiddleware("")(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Header().Get("Access-Control-Allow-Origin")
	}())
}
