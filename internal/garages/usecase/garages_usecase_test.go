package usecase

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/garages/mocks"
	"cybertaxi/internal/service/logger"
	vehiclemocks "cybertaxi/internal/vehicles/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newGaragesUsecase() (GaragesUsecase, *mocks.MockGarageRepository, *vehiclemocks.MockIdentityResolver) {
	logger.AccessLogger = zap.NewNop()
	garageRepo := new(mocks.MockGarageRepository)
	resolver := new(vehiclemocks.MockIdentityResolver)
	return NewGaragesUsecase(garageRepo, resolver), garageRepo, resolver
}

func validRequest() domain.PurchaseGarageRequest {
	return domain.PurchaseGarageRequest{
		Name:        "Downtown Garage",
		Coords:      domain.Coords{30.2672, -97.7431},
		Capacity:    12,
		Type:        "garage",
		CostMonthly: 1500,
	}
}

func TestListOwn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, garageRepo, resolver := newGaragesUsecase()
		resolver.On("ResolveIdentity", mock.Anything, domain.RefByID(42)).
			Return(domain.Identity{SurrogateKey: 9, PlayerID: 42}, nil)
		garageRepo.On("ListByOwner", mock.Anything, uint(9)).
			Return([]domain.Garage{{ID: 1, OwnerID: 9, Name: "Downtown Garage"}}, nil)

		garages, err := uc.ListOwn(context.Background(), 42, 42)
		assert.NoError(t, err)
		assert.Len(t, garages, 1)
	})

	t.Run("Foreign Target Rejected", func(t *testing.T) {
		uc, garageRepo, resolver := newGaragesUsecase()
		resolver.On("ResolveIdentity", mock.Anything, domain.RefByID(42)).
			Return(domain.Identity{SurrogateKey: 9, PlayerID: 42}, nil)

		_, err := uc.ListOwn(context.Background(), 7, 42)
		assert.ErrorIs(t, err, domain.ErrGarageAccess)
		garageRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
	})
}

func TestPurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, garageRepo, resolver := newGaragesUsecase()
		req := validRequest()
		resolver.On("ResolveIdentity", mock.Anything, domain.RefByID(42)).
			Return(domain.Identity{SurrogateKey: 9, PlayerID: 42}, nil)
		garageRepo.On("Purchase", mock.Anything, uint(9), req).
			Return(&domain.Garage{ID: 3, OwnerID: 9, Name: req.Name}, nil)

		garage, err := uc.Purchase(context.Background(), 42, req)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), garage.ID)
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*domain.PurchaseGarageRequest)
		}{
			{"Empty Name", func(r *domain.PurchaseGarageRequest) { r.Name = "" }},
			{"Zero Capacity", func(r *domain.PurchaseGarageRequest) { r.Capacity = 0 }},
			{"Oversized Capacity", func(r *domain.PurchaseGarageRequest) { r.Capacity = 201 }},
			{"Unknown Type", func(r *domain.PurchaseGarageRequest) { r.Type = "hangar" }},
			{"Negative Cost", func(r *domain.PurchaseGarageRequest) { r.CostMonthly = -1 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, garageRepo, _ := newGaragesUsecase()
				req := validRequest()
				tc.mutate(&req)

				_, err := uc.Purchase(context.Background(), 42, req)
				assert.ErrorIs(t, err, domain.ErrValidation)
				garageRepo.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Missing Coords", func(t *testing.T) {
		uc, _, _ := newGaragesUsecase()
		req := validRequest()
		req.Coords = nil

		_, err := uc.Purchase(context.Background(), 42, req)
		assert.ErrorIs(t, err, domain.ErrBadCoords)
	})

	t.Run("Insufficient Funds Surfaces", func(t *testing.T) {
		uc, garageRepo, resolver := newGaragesUsecase()
		req := validRequest()
		resolver.On("ResolveIdentity", mock.Anything, domain.RefByID(42)).
			Return(domain.Identity{SurrogateKey: 9, PlayerID: 42}, nil)
		garageRepo.On("Purchase", mock.Anything, uint(9), req).
			Return(nil, domain.ErrInsufficientFunds)

		_, err := uc.Purchase(context.Background(), 42, req)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}
