package rest

import (
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_HeaderShapes(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no bearer prefix", header: "some-token"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/tasks", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	ts := newTestServer(t)

	tok, err := auth.GenerateToken("u1", []byte("test-secret"), -time.Minute)
	require.NoError(t, err)

	resp, _ := doJSON(t, ts, http.MethodGet, "/tasks", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	ts := newTestServer(t)

	tok, err := auth.GenerateToken("u1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	resp, _ := doJSON(t, ts, http.MethodGet, "/tasks", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenForUnknownAccount(t *testing.T) {
	ts := newTestServer(t)

	// correctly signed, but the subject was never registered
	tok, err := auth.GenerateToken("ghost", []byte("test-secret"), time.Hour)
	require.NoError(t, err)

	resp, _ := doJSON(t, ts, http.MethodGet, "/tasks", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
