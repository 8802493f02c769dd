package controller

import (
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"cybertaxi/internal/vehicles/usecase"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type VehiclesHandler struct {
	usecase  usecase.VehiclesUsecase
	jwtToken middleware.JwtTokenService
}

func NewVehiclesHandler(usecase usecase.VehiclesUsecase, jwtToken middleware.JwtTokenService) *VehiclesHandler {
	return &VehiclesHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

func (h *VehiclesHandler) GetPlayerVehicles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetPlayerVehicles request",
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

	vehicles, err := h.usecase.ListOwn(ctx, claims.PlayerID, playerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":   "Success",
		"vehicles": vehicles,
	}, requestID)

	logger.AccessLogger.Info("Completed GetPlayerVehicles request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *VehiclesHandler) GetOtherVehicles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetOtherVehicles request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	markers, err := h.usecase.ListOthers(ctx, claims.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":   "Success",
		"vehicles": markers,
	}, requestID)

	logger.AccessLogger.Info("Completed GetOtherVehicles request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *VehiclesHandler) PurchaseVehicle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received PurchaseVehicle request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var req domain.PurchaseVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Type = sanitizer.Sanitize(req.Type)

	vehicle, err := h.usecase.Purchase(ctx, claims.PlayerID, req)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusCreated, map[string]interface{}{
		"status":  "Success",
		"vehicle": vehicle,
	}, requestID)

	logger.AccessLogger.Info("Completed PurchaseVehicle request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *VehiclesHandler) SetVehicleStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received SetVehicleStatus request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var req domain.VehicleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Status = sanitizer.Sanitize(req.Status)

	vehicleID := mux.Vars(r)["vehicle_id"]
	if err := h.usecase.SetStatus(ctx, claims.PlayerID, vehicleID, req.Status); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status": "Success",
	}, requestID)

	logger.AccessLogger.Info("Completed SetVehicleStatus request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *VehiclesHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received MarkDelivered request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	vehicleID := mux.Vars(r)["vehicle_id"]
	if err := h.usecase.MarkDelivered(ctx, claims.PlayerID, vehicleID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status": "Success",
	}, requestID)

	logger.AccessLogger.Info("Completed MarkDelivered request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *VehiclesHandler) respond(w http.ResponseWriter, status int, body map[string]interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *VehiclesHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
