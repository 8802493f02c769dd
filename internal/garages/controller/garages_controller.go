package controller

import (
	"cybertaxi/domain"
	"cybertaxi/internal/garages/usecase"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type GaragesHandler struct {
	usecase  usecase.GaragesUsecase
	jwtToken middleware.JwtTokenService
}

func NewGaragesHandler(usecase usecase.GaragesUsecase, jwtToken middleware.JwtTokenService) *GaragesHandler {
	return &GaragesHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *GaragesHandler) GetPlayerGarages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetPlayerGarages request",
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

	garages, err := h.usecase.ListOwn(ctx, claims.PlayerID, playerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"garages": garages,
	}, requestID)

	logger.AccessLogger.Info("Completed GetPlayerGarages request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *GaragesHandler) PurchaseGarage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received PurchaseGarage request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var req domain.PurchaseGarageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Name = sanitizer.Sanitize(req.Name)
	req.Type = sanitizer.Sanitize(req.Type)

	garage, err := h.usecase.Purchase(ctx, claims.PlayerID, req)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusCreated, map[string]interface{}{
		"status": "Success",
		"garage": garage,
	}, requestID)

	logger.AccessLogger.Info("Completed PurchaseGarage request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *GaragesHandler) respond(w http.ResponseWriter, status int, body map[string]interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *GaragesHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
