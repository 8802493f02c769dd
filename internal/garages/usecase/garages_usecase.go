package usecase

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"fmt"

	"go.uber.org/zap"
)

const maxGarageCapacity = 200

type GaragesUsecase interface {
	ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Garage, error)
	Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseGarageRequest) (*domain.Garage, error)
}

type garagesUsecase struct {
	garageRepository domain.GarageRepository
	identityResolver domain.IdentityResolver
}

func NewGaragesUsecase(garageRepository domain.GarageRepository, identityResolver domain.IdentityResolver) GaragesUsecase {
	return &garagesUsecase{
		garageRepository: garageRepository,
		identityResolver: identityResolver,
	}
}

func (uc *garagesUsecase) ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Garage, error) {
	requestID := middleware.GetRequestID(ctx)

	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(targetPlayerID))
	if err != nil {
		return nil, err
	}
	if identity.PlayerID != subjectPlayerID {
		logger.AccessLogger.Warn("Garage list access rejected",
			zap.String("request_id", requestID),
			zap.Int("subject", subjectPlayerID),
			zap.Int("target", identity.PlayerID))
		return nil, domain.ErrGarageAccess
	}
	return uc.garageRepository.ListByOwner(ctx, identity.SurrogateKey)
}

func (uc *garagesUsecase) Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseGarageRequest) (*domain.Garage, error) {
	requestID := middleware.GetRequestID(ctx)

	if req.Name == "" || len(req.Name) > 100 {
		logger.AccessLogger.Warn("Invalid garage name", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: name must be 1-100 characters", domain.ErrValidation)
	}
	if !req.Coords.Valid() {
		logger.AccessLogger.Warn("Invalid garage coords", zap.String("request_id", requestID))
		return nil, domain.ErrBadCoords
	}
	if req.Capacity < 1 || req.Capacity > maxGarageCapacity {
		logger.AccessLogger.Warn("Invalid garage capacity", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: capacity out of range", domain.ErrValidation)
	}
	if !domain.GarageTypes[req.Type] {
		logger.AccessLogger.Warn("Unknown garage type",
			zap.String("request_id", requestID),
			zap.String("type", req.Type))
		return nil, fmt.Errorf("%w: type must be garage or lot", domain.ErrValidation)
	}
	if req.CostMonthly < 0 {
		logger.AccessLogger.Warn("Negative monthly cost", zap.String("request_id", requestID))
		return nil, fmt.Errorf("%w: cost_monthly must be non-negative", domain.ErrValidation)
	}

	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(subjectPlayerID))
	if err != nil {
		return nil, err
	}
	return uc.garageRepository.Purchase(ctx, identity.SurrogateKey, req)
}
