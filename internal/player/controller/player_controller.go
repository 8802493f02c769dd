package controller

import (
	"cybertaxi/domain"
	"cybertaxi/internal/player/usecase"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PlayerHandler struct {
	usecase  usecase.PlayerUsecase
	jwtToken middleware.JwtTokenService
}

func NewPlayerHandler(usecase usecase.PlayerUsecase, jwtToken middleware.JwtTokenService) *PlayerHandler {
	return &PlayerHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetPlayer request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	playerID, err := strconv.Atoi(mux.Vars(r)["player_id"])
	if err != nil {
		h.handleError(w, fmt.Errorf("%w: player_id must be numeric", domain.ErrValidation), requestID)
		return
	}

	profile, err := h.usecase.GetProfile(ctx, claims.PlayerID, playerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status": "Success",
		"player": profile,
	}, requestID)

	logger.AccessLogger.Info("Completed GetPlayer request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PlayerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetBalance request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	username := mux.Vars(r)["username"]
	balance, err := h.usecase.GetBalance(ctx, claims.PlayerID, username)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"balance": balance,
	}, requestID)

	logger.AccessLogger.Info("Completed GetBalance request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PlayerHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetSlots request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	username := mux.Vars(r)["username"]
	slots, err := h.usecase.GetSlots(ctx, claims.PlayerID, username)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status": "Success",
		"slots":  slots,
	}, requestID)

	logger.AccessLogger.Info("Completed GetSlots request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PlayerHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetVehicles request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	username := mux.Vars(r)["username"]
	vehicles, err := h.usecase.GetVehicles(ctx, claims.PlayerID, username)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":   "Success",
		"vehicles": vehicles,
	}, requestID)

	logger.AccessLogger.Info("Completed GetVehicles request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PlayerHandler) GetGarages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetGarages request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	username := mux.Vars(r)["username"]
	garages, err := h.usecase.GetGarages(ctx, claims.PlayerID, username)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"garages": garages,
	}, requestID)

	logger.AccessLogger.Info("Completed GetGarages request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *PlayerHandler) respond(w http.ResponseWriter, status int, body map[string]interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *PlayerHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(domain.StatusCode(err))
	errorResponse := map[string]string{"status": "Error", "message": err.Error()}
	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
