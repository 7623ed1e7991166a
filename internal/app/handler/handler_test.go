package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamerental/internal/app/config"
	"gamerental/internal/app/ds"
	"gamerental/internal/app/dto"
	"gamerental/internal/app/middleware"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/token"
	"gamerental/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type memoryBlacklist struct {
	tokens map[string]time.Duration
}

func (m *memoryBlacklist) WriteJWTToBlacklist(_ context.Context, jwtStr string, ttl time.Duration) error {
	m.tokens[jwtStr] = ttl
	return nil
}

func (m *memoryBlacklist) IsJWTBlacklisted(_ context.Context, jwtStr string) (bool, error) {
	_, ok := m.tokens[jwtStr]
	return ok, nil
}

type memoryImages struct {
	objects map[string][]byte
}

func (m *memoryImages) UploadFile(_ context.Context, gameID uint, fileData []byte, filename string) (string, error) {
	name := fmt.Sprintf("game_%d_%d_%s", gameID, len(m.objects), filename)
	m.objects[name] = fileData
	return name, nil
}

func (m *memoryImages) DeleteFile(_ context.Context, filename string) error {
	delete(m.objects, filename)
	return nil
}

func (m *memoryImages) DownloadFile(_ context.Context, filename string) ([]byte, error) {
	data, ok := m.objects[filename]
	if !ok {
		return nil, fmt.Errorf("object %s not found", filename)
	}
	return data, nil
}

type testServer struct {
	router    *gin.Engine
	repo      *repository.Repository
	tokens    *token.Manager
	blacklist *memoryBlacklist
	images    *memoryImages
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:h_%s?mode=memory&cache=shared", name)), repository.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestServer(t *testing.T, withImages bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())
	passwordCost = bcrypt.MinCost

	repo := repository.NewFromDB(openTestDB(t))
	require.NoError(t, repo.Migrate())

	s := &testServer{
		repo:      repo,
		tokens:    token.NewManager(config.JWTConfig{Token: "test-secret", ExpiresIn: time.Hour}),
		blacklist: &memoryBlacklist{tokens: map[string]time.Duration{}},
	}

	var images ImageStore
	if withImages {
		s.images = &memoryImages{objects: map[string][]byte{}}
		images = s.images
	}

	h := NewAPIHandler(repo, images, NewAuthHandler(repo, s.tokens, s.blacklist))
	s.router = gin.New()
	h.RegisterAPIRoutes(s.router, middleware.NewAuthMiddleware(s.tokens, s.blacklist))
	return s
}

// seedAdmin stores an Admin user with the given password and returns a token for it.
func (s *testServer) seedAdmin(t *testing.T, email, password string) string {
	t.Helper()
	ctx := context.Background()

	level, err := s.repo.CreateLevel(ctx, "Admin")
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := ds.User{Name: "Admin", Email: email, Password: string(hash), LevelID: level.ID}
	require.NoError(t, s.repo.CreateUser(ctx, &user))

	tok, err := s.tokens.Issue(&user)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, tok string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// create posts the body and returns the new id.
func (s *testServer) create(t *testing.T, path string, body interface{}, tok string) uint {
	t.Helper()
	rr := s.do(t, http.MethodPost, path, body, tok)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	env := decode[dto.Envelope](t, rr)
	require.Equal(t, dto.KindSuccess, env.Kind)
	require.NotZero(t, env.ID)
	return env.ID
}
