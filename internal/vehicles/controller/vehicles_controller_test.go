package controller

import (
	"bytes"
	"cybertaxi/domain"
	authmocks "cybertaxi/internal/auth/mocks"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"cybertaxi/internal/vehicles/mocks"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVehiclesHandler() (*VehiclesHandler, *mocks.MockVehiclesUsecase, *authmocks.MockJwtTokenService) {
	logger.AccessLogger = zap.NewNop()
	mockUsecase := new(mocks.MockVehiclesUsecase)
	mockJWT := new(authmocks.MockJwtTokenService)
	return &VehiclesHandler{usecase: mockUsecase, jwtToken: mockJWT}, mockUsecase, mockJWT
}

func newRequest(method, url string, body []byte, token string, vars map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, url, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r, httptest.NewRecorder()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	return body
}

func TestGetPlayerVehicles(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("ListOwn", mock.Anything, 42, 42).
			Return([]domain.Vehicle{{VehicleID: "CT-001", Status: domain.StatusActive}}, nil)

		r, w := newRequest(http.MethodGet, "/api/vehicles/42", nil, "token", map[string]string{"player_id": "42"})
		h.GetPlayerVehicles(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Success", resp["status"])
	})

	t.Run("Foreign Fleet", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 7}, nil)
		mockUsecase.On("ListOwn", mock.Anything, 7, 42).Return(nil, domain.ErrVehicleAccess)

		r, w := newRequest(http.MethodGet, "/api/vehicles/42", nil, "token", map[string]string{"player_id": "42"})
		h.GetPlayerVehicles(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "Error", resp["status"])
		assert.Equal(t, "Unauthorized access to player vehicles", resp["message"])
	})

	t.Run("No Token", func(t *testing.T) {
		h, _, _ := newVehiclesHandler()

		r, w := newRequest(http.MethodGet, "/api/vehicles/42", nil, "", map[string]string{"player_id": "42"})
		h.GetPlayerVehicles(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetOtherVehicles(t *testing.T) {
	h, mockUsecase, mockJWT := newVehiclesHandler()
	mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
	mockUsecase.On("ListOthers", mock.Anything, 42).
		Return([]domain.VehicleMarker{{VehicleID: "CT-007", Username: "bob", Status: domain.StatusFare}}, nil)

	r, w := newRequest(http.MethodGet, "/api/vehicles/others", nil, "token", nil)
	h.GetOtherVehicles(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	vehicles := resp["vehicles"].([]interface{})
	require.Len(t, vehicles, 1)
}

func TestPurchaseVehicle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("Purchase", mock.Anything, 42, mock.MatchedBy(func(req domain.PurchaseVehicleRequest) bool {
			return req.Type == "sedan"
		})).Return(&domain.Vehicle{VehicleID: "CT-003", Status: domain.StatusNew}, nil)

		body, _ := json.Marshal(domain.PurchaseVehicleRequest{Type: "sedan", Coords: domain.Coords{30.2672, -97.7431}})
		r, w := newRequest(http.MethodPost, "/api/vehicles", body, "token", nil)
		h.PurchaseVehicle(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		vehicle := resp["vehicle"].(map[string]interface{})
		assert.Equal(t, "CT-003", vehicle["vehicle_id"])
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("Purchase", mock.Anything, 42, mock.Anything).
			Return(nil, domain.ErrInsufficientFunds)

		body, _ := json.Marshal(domain.PurchaseVehicleRequest{Type: "limo"})
		r, w := newRequest(http.MethodPost, "/api/vehicles", body, "token", nil)
		h.PurchaseVehicle(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Model", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("Purchase", mock.Anything, 42, mock.Anything).
			Return(nil, domain.ErrValidation)

		body, _ := json.Marshal(domain.PurchaseVehicleRequest{Type: "hoverboard"})
		r, w := newRequest(http.MethodPost, "/api/vehicles", body, "token", nil)
		h.PurchaseVehicle(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetVehicleStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("SetStatus", mock.Anything, 42, "CT-001", domain.StatusMaintenance).Return(nil)

		body, _ := json.Marshal(domain.VehicleStatusRequest{Status: domain.StatusMaintenance})
		r, w := newRequest(http.MethodPatch, "/api/vehicles/CT-001/status", body, "token", map[string]string{"vehicle_id": "CT-001"})
		h.SetVehicleStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not Owner", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 7}, nil)
		mockUsecase.On("SetStatus", mock.Anything, 7, "CT-001", domain.StatusParked).
			Return(domain.ErrVehicleAccess)

		body, _ := json.Marshal(domain.VehicleStatusRequest{Status: domain.StatusParked})
		r, w := newRequest(http.MethodPatch, "/api/vehicles/CT-001/status", body, "token", map[string]string{"vehicle_id": "CT-001"})
		h.SetVehicleStatus(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMarkDelivered(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("MarkDelivered", mock.Anything, 42, "CT-001").Return(nil)

		r, w := newRequest(http.MethodPost, "/api/vehicles/CT-001/delivered", nil, "token", map[string]string{"vehicle_id": "CT-001"})
		h.MarkDelivered(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown Vehicle", func(t *testing.T) {
		h, mockUsecase, mockJWT := newVehiclesHandler()
		mockJWT.On("Validate", "token").Return(&middleware.JwtClaims{PlayerID: 42}, nil)
		mockUsecase.On("MarkDelivered", mock.Anything, 42, "CT-404").
			Return(domain.ErrVehicleNotFound)

		r, w := newRequest(http.MethodPost, "/api/vehicles/CT-404/delivered", nil, "token", map[string]string{"vehicle_id": "CT-404"})
		h.MarkDelivered(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
