package controller

import (
	"cybertaxi/internal/service/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDeps(t *testing.T) (*gorm.DB, *redis.Client) {
	t.Helper()
	logger.AccessLogger = zap.NewNop()
	logger.DBLogger = zap.NewNop()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return gormDB, client
}

func TestHealth(t *testing.T) {
	db, redisClient := newTestDeps(t)
	h := NewHealthHandler(db, redisClient, "http://localhost:8080")

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDbStatus(t *testing.T) {
	db, redisClient := newTestDeps(t)
	h := NewHealthHandler(db, redisClient, "http://localhost:8080")

	w := httptest.NewRecorder()
	h.DbStatus(w, httptest.NewRequest(http.MethodGet, "/api/health/db", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["database"])
}

func TestSystemHealth(t *testing.T) {
	t.Run("All Components Up", func(t *testing.T) {
		db, redisClient := newTestDeps(t)
		tiles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer tiles.Close()

		h := NewHealthHandler(db, redisClient, tiles.URL)
		w := httptest.NewRecorder()
		h.SystemHealth(w, httptest.NewRequest(http.MethodGet, "/api/health/system", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Success", body["status"])
		components := body["components"].(map[string]interface{})
		assert.Equal(t, "ok", components["database"])
		assert.Equal(t, "ok", components["redis"])
		assert.Equal(t, "ok", components["tile_server"])
	})

	t.Run("Tile Server Down", func(t *testing.T) {
		db, redisClient := newTestDeps(t)
		tiles := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		tiles.Close()

		h := NewHealthHandler(db, redisClient, tiles.URL)
		w := httptest.NewRecorder()
		h.SystemHealth(w, httptest.NewRequest(http.MethodGet, "/api/health/system", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Error", body["status"])
		components := body["components"].(map[string]interface{})
		assert.Equal(t, "ok", components["database"])
		assert.NotEqual(t, "ok", components["tile_server"])
	})
}
