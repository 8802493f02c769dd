package mocks

import (
	"context"
	"cybertaxi/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) ListByOwner(ctx context.Context, surrogateKey uint) ([]domain.Vehicle, error) {
	args := m.Called(ctx, surrogateKey)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) ListOthers(ctx context.Context, surrogateKey uint) ([]domain.VehicleMarker, error) {
	args := m.Called(ctx, surrogateKey)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.VehicleMarker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) Purchase(ctx context.Context, surrogateKey uint, vehicleType string, cost float64, coords domain.Coords, deliveryAt time.Time) (*domain.Vehicle, error) {
	args := m.Called(ctx, surrogateKey, vehicleType, cost, coords, deliveryAt)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) SetStatus(ctx context.Context, vehicleID, status string) error {
	args := m.Called(ctx, vehicleID, status)
	return args.Error(0)
}

func (m *MockVehicleRepository) MarkDelivered(ctx context.Context, vehicleID string) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockVehicleRepository) CountByOwner(ctx context.Context, surrogateKey uint) (int, error) {
	args := m.Called(ctx, surrogateKey)
	return args.Int(0), args.Error(1)
}

type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) ResolveIdentity(ctx context.Context, ref domain.PlayerRef) (domain.Identity, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.Identity), args.Error(1)
}

type MockVehiclesUsecase struct {
	mock.Mock
}

func (m *MockVehiclesUsecase) ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Vehicle, error) {
	args := m.Called(ctx, subjectPlayerID, targetPlayerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehiclesUsecase) ListOthers(ctx context.Context, subjectPlayerID int) ([]domain.VehicleMarker, error) {
	args := m.Called(ctx, subjectPlayerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.VehicleMarker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehiclesUsecase) Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseVehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, subjectPlayerID, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehiclesUsecase) SetStatus(ctx context.Context, subjectPlayerID int, vehicleID, status string) error {
	args := m.Called(ctx, subjectPlayerID, vehicleID, status)
	return args.Error(0)
}

func (m *MockVehiclesUsecase) MarkDelivered(ctx context.Context, subjectPlayerID int, vehicleID string) error {
	args := m.Called(ctx, subjectPlayerID, vehicleID)
	return args.Error(0)
}
