package googleauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func tokeninfoServer(t *testing.T, body map[string]any, status int) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/v2/tokeninfo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server.URL + "/"
}

func TestVerify(t *testing.T) {
	endpoint := tokeninfoServer(t, map[string]any{
		"email":          "admin@example.com",
		"verified_email": true,
		"audience":       "client-1",
		"user_id":        "123",
	}, http.StatusOK)

	v := NewVerifier("client-1", option.WithEndpoint(endpoint))
	id, err := v.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", id.Email)
	assert.Equal(t, "123", id.UserID)
}

func TestVerifyRejectsUnverifiedEmail(t *testing.T) {
	endpoint := tokeninfoServer(t, map[string]any{
		"email":          "admin@example.com",
		"verified_email": false,
		"audience":       "client-1",
	}, http.StatusOK)

	_, err := NewVerifier("client-1", option.WithEndpoint(endpoint)).Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrUnverifiedEmail)
}

func TestVerifyRejectsOtherAudience(t *testing.T) {
	endpoint := tokeninfoServer(t, map[string]any{
		"email":          "admin@example.com",
		"verified_email": true,
		"audience":       "someone-else",
	}, http.StatusOK)

	_, err := NewVerifier("client-1", option.WithEndpoint(endpoint)).Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrWrongAudience)
}

func TestVerifyInvalidToken(t *testing.T) {
	endpoint := tokeninfoServer(t, map[string]any{
		"error": map[string]any{"code": 400, "message": "Invalid Value"},
	}, http.StatusBadRequest)

	_, err := NewVerifier("", option.WithEndpoint(endpoint)).Verify(context.Background(), "bad")
	assert.Error(t, err)
}
