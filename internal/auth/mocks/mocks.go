package mocks

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/middleware"

	jwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
)

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreatePlayer(ctx context.Context, username, email, passwordHash string, bankBalance float64) (*domain.Player, error) {
	args := m.Called(ctx, username, email, passwordHash, bankBalance)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) FindByPlayerID(ctx context.Context, playerID int) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) FindByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) UpdatePassword(ctx context.Context, surrogateKey uint, passwordHash string) error {
	args := m.Called(ctx, surrogateKey, passwordHash)
	return args.Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Player, error) {
	args := m.Called(ctx, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, playerID int, password string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) LoginByUsername(ctx context.Context, username, password string) (*domain.Player, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Player), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, subjectPlayerID int, req domain.ResetPasswordRequest) error {
	args := m.Called(ctx, subjectPlayerID, req)
	return args.Error(0)
}

type MockJwtTokenService struct {
	mock.Mock
}

func (m *MockJwtTokenService) Create(playerID int, tokenExpTime int64) (string, error) {
	args := m.Called(playerID, tokenExpTime)
	return args.String(0), args.Error(1)
}

func (m *MockJwtTokenService) Validate(tokenString string) (*middleware.JwtClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) != nil {
		return args.Get(0).(*middleware.JwtClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJwtTokenService) ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	args := m.Called(token)
	return args.Get(0), args.Error(1)
}

type MockRefreshStore struct {
	mock.Mock
}

func (m *MockRefreshStore) Issue(ctx context.Context, playerID int) (string, error) {
	args := m.Called(ctx, playerID)
	return args.String(0), args.Error(1)
}

func (m *MockRefreshStore) Rotate(ctx context.Context, token string) (int, string, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.String(1), args.Error(2)
}

func (m *MockRefreshStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
