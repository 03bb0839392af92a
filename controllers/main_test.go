package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"roleplay/config"
	dbpkg "roleplay/db"
	"roleplay/mailer"
	"roleplay/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent     int
	to       string
	username string
	link     string
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, to, username, link string) error {
	f.sent++
	f.to = to
	f.username = username
	f.link = link
	return nil
}

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	mail   *fakeMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	conn.LogMode(false)
	conn.DB().SetMaxOpenConns(1)
	dbpkg.AutoMigrate(conn)
	t.Cleanup(func() { conn.Close() })

	fm := &fakeMailer{}
	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(conn))
	r.Use(mailer.SetMailerToContext(fm))
	router.Initialize(r, config.Configuration{})

	return &testServer{engine: r, db: conn, mail: fm}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *testServer) createUser(t *testing.T, email, username, password string) map[string]any {
	t.Helper()
	w := s.do(t, http.MethodPost, "/users", gin.H{
		"email":    email,
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	user, ok := decodeBody(t, w)["user"].(map[string]any)
	require.True(t, ok, "user missing in response")
	return user
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/sessions", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token, ok := decodeBody(t, w)["token"].(map[string]any)
	require.True(t, ok, "token missing in response")
	value, ok := token["token"].(string)
	require.True(t, ok, "token value missing")
	return value
}

func (s *testServer) createGroup(t *testing.T, token string, masterID int64) map[string]any {
	t.Helper()
	w := s.do(t, http.MethodPost, "/groups", gin.H{
		"name":        "test",
		"description": "test",
		"schedule":    "test",
		"location":    "test",
		"chronic":     "test",
		"master":      masterID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	group, ok := decodeBody(t, w)["group"].(map[string]any)
	require.True(t, ok, "group missing in response")
	return group
}

func asID(t *testing.T, m map[string]any, key string) int64 {
	t.Helper()
	v, ok := m[key].(float64)
	require.True(t, ok, "missing numeric field %q", key)
	return int64(v)
}
