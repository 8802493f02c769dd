package controller

import (
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	redis   *redis.Client
	tileURL string
	client  *http.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, tileURL string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		tileURL: tileURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]interface{}{
		"status": "Success",
	})
}

func (h *HealthHandler) DbStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.pingDB(); err != nil {
		logger.AccessLogger.Error("Database unreachable",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.respond(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "Error",
			"message": "Database unreachable",
		})
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":   "Success",
		"database": "ok",
	})
}

func (h *HealthHandler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	components := map[string]string{
		"database":    "ok",
		"redis":       "ok",
		"tile_server": "ok",
	}
	healthy := true

	if err := h.pingDB(); err != nil {
		components["database"] = err.Error()
		healthy = false
	}
	if err := h.redis.Ping(r.Context()).Err(); err != nil {
		components["redis"] = err.Error()
		healthy = false
	}
	if resp, err := h.client.Get(h.tileURL + "/health"); err != nil {
		components["tile_server"] = err.Error()
		healthy = false
	} else {
		resp.Body.Close()
	}

	status := http.StatusOK
	result := "Success"
	if !healthy {
		status = http.StatusInternalServerError
		result = "Error"
		logger.AccessLogger.Warn("System health degraded", zap.String("request_id", requestID))
	}

	h.respond(w, status, map[string]interface{}{
		"status":     result,
		"components": components,
	})
}

func (h *HealthHandler) pingDB() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (h *HealthHandler) respond(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode health response", zap.Error(err))
	}
}
