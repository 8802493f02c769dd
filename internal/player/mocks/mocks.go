package mocks

import (
	"context"
	"cybertaxi/domain"

	"github.com/stretchr/testify/mock"
)

type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) ResolveIdentity(ctx context.Context, ref domain.PlayerRef) (domain.Identity, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func (m *MockPlayerRepository) GetProfile(ctx context.Context, surrogateKey uint) (*domain.PlayerProfile, error) {
	args := m.Called(ctx, surrogateKey)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PlayerProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) GetBalance(ctx context.Context, surrogateKey uint) (float64, error) {
	args := m.Called(ctx, surrogateKey)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPlayerRepository) GetSlots(ctx context.Context, surrogateKey uint) (domain.SlotsResponse, error) {
	args := m.Called(ctx, surrogateKey)
	return args.Get(0).(domain.SlotsResponse), args.Error(1)
}

type MockPlayerUsecase struct {
	mock.Mock
}

func (m *MockPlayerUsecase) GetProfile(ctx context.Context, subjectPlayerID, targetPlayerID int) (*domain.PlayerProfile, error) {
	args := m.Called(ctx, subjectPlayerID, targetPlayerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PlayerProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerUsecase) GetBalance(ctx context.Context, subjectPlayerID int, username string) (float64, error) {
	args := m.Called(ctx, subjectPlayerID, username)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPlayerUsecase) GetSlots(ctx context.Context, subjectPlayerID int, username string) (domain.SlotsResponse, error) {
	args := m.Called(ctx, subjectPlayerID, username)
	return args.Get(0).(domain.SlotsResponse), args.Error(1)
}

func (m *MockPlayerUsecase) GetVehicles(ctx context.Context, subjectPlayerID int, username string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, subjectPlayerID, username)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerUsecase) GetGarages(ctx context.Context, subjectPlayerID int, username string) ([]domain.Garage, error) {
	args := m.Called(ctx, subjectPlayerID, username)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Garage), args.Error(1)
	}
	return nil, args.Error(1)
}
