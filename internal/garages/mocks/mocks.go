package mocks

import (
	"context"
	"cybertaxi/domain"

	"github.com/stretchr/testify/mock"
)

type MockGarageRepository struct {
	mock.Mock
}

func (m *MockGarageRepository) ListByOwner(ctx context.Context, surrogateKey uint) ([]domain.Garage, error) {
	args := m.Called(ctx, surrogateKey)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Garage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGarageRepository) Purchase(ctx context.Context, surrogateKey uint, req domain.PurchaseGarageRequest) (*domain.Garage, error) {
	args := m.Called(ctx, surrogateKey, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Garage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGarageRepository) TotalCapacity(ctx context.Context, surrogateKey uint) (int, error) {
	args := m.Called(ctx, surrogateKey)
	return args.Int(0), args.Error(1)
}

type MockGaragesUsecase struct {
	mock.Mock
}

func (m *MockGaragesUsecase) ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Garage, error) {
	args := m.Called(ctx, subjectPlayerID, targetPlayerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Garage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGaragesUsecase) Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseGarageRequest) (*domain.Garage, error) {
	args := m.Called(ctx, subjectPlayerID, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Garage), args.Error(1)
	}
	return nil, args.Error(1)
}
