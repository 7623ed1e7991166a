package handler

import (
	"net/http"
	"testing"

	"gamerental/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s := newTestServer(t, false)
	s.seedAdmin(t, "admin@example.com", "secret")

	rr := s.do(t, http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password")

	resp := decode[dto.LoginResponse](t, rr)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	require.NotNil(t, resp.User.Level)
	assert.Equal(t, "Admin", resp.User.Level.Name)

	claims, err := s.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	s := newTestServer(t, false)
	s.seedAdmin(t, "admin@example.com", "secret")

	wrongPassword := s.do(t, http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "nope"}, "")
	unknownEmail := s.do(t, http.MethodPost, "/login", map[string]string{"email": "ghost@example.com", "password": "secret"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	env := decode[dto.Envelope](t, wrongPassword)
	assert.Equal(t, dto.Envelope{Kind: dto.KindWarning, Message: "invalid email or password"}, env)

	missing := s.do(t, http.MethodPost, "/login", map[string]string{"email": "admin@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, "required", decode[dto.Envelope](t, missing).Fields["password"])
}

func TestProfileAndLogout(t *testing.T) {
	s := newTestServer(t, false)
	tok := s.seedAdmin(t, "admin@example.com", "secret")

	rr := s.do(t, http.MethodGet, "/profile", nil, tok)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "admin@example.com", decode[dto.UserResponse](t, rr).Email)

	rr = s.do(t, http.MethodPost, "/logout", nil, tok)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, s.blacklist.tokens, tok)

	rr = s.do(t, http.MethodGet, "/profile", nil, tok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, dto.Envelope{Kind: dto.KindError, Message: "invalid token"}, decode[dto.Envelope](t, rr))
}

func TestPublicAndProtectedRoutes(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/ping", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/levels", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/metrics", nil, "").Code)

	for _, path := range []string{"/clients", "/games", "/orders", "/dashboard", "/levels/1", "/users"} {
		rr := s.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
		assert.Equal(t, dto.Envelope{Kind: dto.KindWarning, Message: "token is required"}, decode[dto.Envelope](t, rr), path)
	}
}
