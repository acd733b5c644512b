package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-api/internal/common/config"
	"user-api/internal/features/user/models"
	"user-api/internal/features/user/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUsers struct {
	service.UserService
}

func (stubUsers) GetUserByName(_ context.Context, username string) (*models.User, error) {
	return &models.User{Username: username, Email: "a@x.com", Phone: "555"}, nil
}

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

func newTestRouter(db, cache error) *gin.Engine {
	cfg := &config.Config{}
	cfg.Server.Origin = "http://localhost:3000"

	return NewRouter(cfg, Dependencies{
		Users:    stubUsers{},
		Database: stubChecker{err: db},
		Sessions: stubChecker{err: cache},
	})
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	w := get(newTestRouter(nil, nil), "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Ready(t *testing.T) {
	tests := []struct {
		name   string
		db     error
		cache  error
		status int
		errMsg string
	}{
		{name: "all up", status: http.StatusOK},
		{name: "mongo down", db: errors.New("no primary"), status: http.StatusServiceUnavailable, errMsg: "mongo unavailable"},
		{name: "redis down", cache: errors.New("refused"), status: http.StatusServiceUnavailable, errMsg: "redis unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newTestRouter(tt.db, tt.cache), "/ready")
			assert.Equal(t, tt.status, w.Code)
			if tt.errMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.errMsg, body["error"])
			}
		})
	}
}

func TestRouter_UnmatchedRoute(t *testing.T) {
	w := get(newTestRouter(nil, nil), "/nonexistent")

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "route not found", body["error"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRouter_UserRoutes(t *testing.T) {
	w := get(newTestRouter(nil, nil), "/user/alice")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestRouter_APIDocs(t *testing.T) {
	r := newTestRouter(nil, nil)

	w := get(r, "/api-docs/doc.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for _, path := range []string{"/user", "/user/createWithArray", "/user/createWithList", "/user/login", "/user/logout", "/user/{name}"} {
		assert.Contains(t, doc.Paths, path)
	}

	assert.Equal(t, http.StatusOK, get(r, "/api-docs/index.html").Code)
}

func TestRouter_CORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/user/alice", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	newTestRouter(nil, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
