package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamerental/internal/app/config"
	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeBlacklist) IsJWTBlacklisted(_ context.Context, jwtStr string) (bool, error) {
	return f.revoked[jwtStr], f.err
}

func newRouter(am *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/profile", am.WithAuthCheck(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "token": CurrentToken(c)})
	})
	return r
}

func call(t *testing.T, r http.Handler, header string) (int, dto.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var env dto.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr.Code, env
}

func TestWithAuthCheck(t *testing.T) {
	tokens := token.NewManager(config.JWTConfig{Token: "secret", ExpiresIn: time.Hour})
	valid, err := tokens.Issue(&ds.User{ID: 7, LevelID: 1})
	require.NoError(t, err)
	revoked, err := tokens.Issue(&ds.User{ID: 8, LevelID: 1})
	require.NoError(t, err)
	foreign, err := token.NewManager(config.JWTConfig{Token: "other"}).Issue(&ds.User{ID: 7})
	require.NoError(t, err)

	r := newRouter(NewAuthMiddleware(tokens, &fakeBlacklist{revoked: map[string]bool{revoked: true}}))

	code, env := call(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, dto.Envelope{Kind: dto.KindWarning, Message: "token is required"}, env)

	for name, header := range map[string]string{
		"no scheme":    valid,
		"wrong scheme": "Basic " + valid,
		"garbage":      "Bearer abc.def.ghi",
		"wrong secret": "Bearer " + foreign,
		"blacklisted":  "Bearer " + revoked,
		"empty bearer": "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			code, env := call(t, r, header)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Equal(t, dto.KindError, env.Kind)
			assert.Equal(t, "invalid token", env.Message)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		UserID uint   `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.UserID)
	assert.Equal(t, valid, body.Token)
}

func TestWithAuthCheckWithoutBlacklist(t *testing.T) {
	tokens := token.NewManager(config.JWTConfig{Token: "secret"})
	valid, err := tokens.Issue(&ds.User{ID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rr := httptest.NewRecorder()
	newRouter(NewAuthMiddleware(tokens, nil)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithAuthCheckBlacklistDown(t *testing.T) {
	tokens := token.NewManager(config.JWTConfig{Token: "secret"})
	valid, err := tokens.Issue(&ds.User{ID: 1})
	require.NoError(t, err)

	r := newRouter(NewAuthMiddleware(tokens, &fakeBlacklist{err: errors.New("connection refused")}))
	code, env := call(t, r, "Bearer "+valid)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, dto.KindWarning, env.Kind)
}
