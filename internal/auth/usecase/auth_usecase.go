package usecase

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"cybertaxi/internal/service/validation"
	"fmt"

	"go.uber.org/zap"
)

const defaultBankBalance = 10000

type AuthUsecase interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.Player, error)
	Login(ctx context.Context, playerID int, password string) (*domain.Player, error)
	LoginByUsername(ctx context.Context, username, password string) (*domain.Player, error)
	ResetPassword(ctx context.Context, subjectPlayerID int, req domain.ResetPasswordRequest) error
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Player, error) {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateUsername(req.Username) {
		logger.AccessLogger.Warn("Invalid username", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: invalid username", domain.ErrValidation)
	}
	if !validation.ValidateEmail(req.Email) {
		logger.AccessLogger.Warn("Invalid email", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if !validation.ValidatePassword(req.Password) {
		logger.AccessLogger.Warn("Invalid password", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: invalid password", domain.ErrValidation)
	}

	balance := float64(defaultBankBalance)
	if req.BankBalance != nil {
		if *req.BankBalance < 0 {
			logger.AccessLogger.Warn("Negative starting balance", zap.String("request_id", requestID))
			return nil, fmt.Errorf("%w: bank_balance must be non-negative", domain.ErrValidation)
		}
		balance = *req.BankBalance
	}

	hash, err := middleware.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return uc.authRepository.CreatePlayer(ctx, req.Username, req.Email, hash, balance)
}

func (uc *authUsecase) Login(ctx context.Context, playerID int, password string) (*domain.Player, error) {
	player, err := uc.authRepository.FindByPlayerID(ctx, playerID)
	if err != nil {
		return nil, domain.ErrInvalidCreds
	}
	if !middleware.CheckPassword(player.Password, password) {
		return nil, domain.ErrInvalidCreds
	}
	return player, nil
}

func (uc *authUsecase) LoginByUsername(ctx context.Context, username, password string) (*domain.Player, error) {
	player, err := uc.authRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCreds
	}
	if !middleware.CheckPassword(player.Password, password) {
		return nil, domain.ErrInvalidCreds
	}
	return player, nil
}

// ResetPassword lets a player change only their own password: the token
// subject must resolve to the same player as the username in the body.
func (uc *authUsecase) ResetPassword(ctx context.Context, subjectPlayerID int, req domain.ResetPasswordRequest) error {
	requestID := middleware.GetRequestID(ctx)

	player, err := uc.authRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if player.PlayerID != subjectPlayerID {
		logger.AccessLogger.Warn("Password reset for another player rejected",
			zap.String("request_id", requestID),
			zap.Int("subject", subjectPlayerID),
			zap.Int("target", player.PlayerID))
		return domain.ErrPlayerAccess
	}
	if !validation.ValidatePassword(req.NewPassword) {
		return fmt.Errorf("%w: invalid password", domain.ErrValidation)
	}

	hash, err := middleware.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return uc.authRepository.UpdatePassword(ctx, player.ID, hash)
}
