package controller

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/auth/usecase"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"cybertaxi/internal/session"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	usecase  usecase.AuthUsecase
	jwtToken middleware.JwtTokenService
	sessions session.RefreshStore
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService, sessions session.RefreshStore) *AuthHandler {
	return &AuthHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
		sessions: sessions,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received Signup request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Username = sanitizer.Sanitize(req.Username)
	req.Email = sanitizer.Sanitize(req.Email)

	player, err := h.usecase.Signup(ctx, req)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, refresh, err := h.issueTokens(ctx, player.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusCreated, map[string]interface{}{
		"status":        "Success",
		"token":         token,
		"refresh_token": refresh,
		"player_id":     player.PlayerID,
	}, requestID)

	logger.AccessLogger.Info("Completed Signup request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Login request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}

	player, err := h.usecase.Login(ctx, req.PlayerID, req.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, refresh, err := h.issueTokens(ctx, player.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":        "Success",
		"token":         token,
		"refresh_token": refresh,
	}, requestID)

	logger.AccessLogger.Info("Completed Login request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) LoginByUsername(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received LoginByUsername request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.UsernameLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Username = sanitizer.Sanitize(req.Username)

	player, err := h.usecase.LoginByUsername(ctx, req.Username, req.Password)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, refresh, err := h.issueTokens(ctx, player.PlayerID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":        "Success",
		"token":         token,
		"refresh_token": refresh,
		"player_id":     player.PlayerID,
	}, requestID)

	logger.AccessLogger.Info("Completed LoginByUsername request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received ResetPassword request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	claims, err := middleware.BearerClaims(r, h.jwtToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var req domain.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}
	req.Username = sanitizer.Sanitize(req.Username)

	if err := h.usecase.ResetPassword(ctx, claims.PlayerID, req); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"message": "Password updated",
	}, requestID)

	logger.AccessLogger.Info("Completed ResetPassword request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received Refresh request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation), requestID)
		return
	}

	playerID, next, err := h.sessions.Rotate(ctx, req.RefreshToken)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	token, err := h.jwtToken.Create(playerID, time.Now().Add(tokenLifetime).Unix())
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	h.respond(w, http.StatusOK, map[string]interface{}{
		"status":        "Success",
		"token":         token,
		"refresh_token": next,
	}, requestID)

	logger.AccessLogger.Info("Completed Refresh request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) issueTokens(ctx context.Context, playerID int) (string, string, error) {
	token, err := h.jwtToken.Create(playerID, time.Now().Add(tokenLifetime).Unix())
	if err != nil {
		return "", "", err
	}
	refresh, err := h.sessions.Issue(ctx, playerID)
	if err != nil {
		return "", "", err
	}
	return token, refresh, nil
}

func (h *AuthHandler) respond(w http.ResponseWriter, status int, body map[string]interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
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
