package usecase

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// New vehicles arrive half an hour after purchase.
const deliveryDelay = 30 * time.Minute

type VehiclesUsecase interface {
	ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Vehicle, error)
	ListOthers(ctx context.Context, subjectPlayerID int) ([]domain.VehicleMarker, error)
	Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseVehicleRequest) (*domain.Vehicle, error)
	SetStatus(ctx context.Context, subjectPlayerID int, vehicleID, status string) error
	MarkDelivered(ctx context.Context, subjectPlayerID int, vehicleID string) error
}

type vehiclesUsecase struct {
	vehicleRepository domain.VehicleRepository
	identityResolver  domain.IdentityResolver
}

func NewVehiclesUsecase(vehicleRepository domain.VehicleRepository, identityResolver domain.IdentityResolver) VehiclesUsecase {
	return &vehiclesUsecase{
		vehicleRepository: vehicleRepository,
		identityResolver:  identityResolver,
	}
}

func (uc *vehiclesUsecase) ListOwn(ctx context.Context, subjectPlayerID, targetPlayerID int) ([]domain.Vehicle, error) {
	requestID := middleware.GetRequestID(ctx)

	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(targetPlayerID))
	if err != nil {
		return nil, err
	}
	if identity.PlayerID != subjectPlayerID {
		logger.AccessLogger.Warn("Vehicle list access rejected",
			zap.String("request_id", requestID),
			zap.Int("subject", subjectPlayerID),
			zap.Int("target", identity.PlayerID))
		return nil, domain.ErrVehicleAccess
	}
	return uc.vehicleRepository.ListByOwner(ctx, identity.SurrogateKey)
}

func (uc *vehiclesUsecase) ListOthers(ctx context.Context, subjectPlayerID int) ([]domain.VehicleMarker, error) {
	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(subjectPlayerID))
	if err != nil {
		return nil, err
	}
	return uc.vehicleRepository.ListOthers(ctx, identity.SurrogateKey)
}

func (uc *vehiclesUsecase) Purchase(ctx context.Context, subjectPlayerID int, req domain.PurchaseVehicleRequest) (*domain.Vehicle, error) {
	requestID := middleware.GetRequestID(ctx)

	cost, ok := domain.VehicleModels[req.Type]
	if !ok {
		logger.AccessLogger.Warn("Unknown vehicle model",
			zap.String("request_id", requestID),
			zap.String("type", req.Type))
		return nil, fmt.Errorf("%w: unknown vehicle type", domain.ErrValidation)
	}
	if err := domain.CheckCoords(req.Coords); err != nil {
		logger.AccessLogger.Warn("Invalid coords", zap.String("request_id", requestID))
		return nil, err
	}

	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(subjectPlayerID))
	if err != nil {
		return nil, err
	}

	deliveryAt := time.Now().Add(deliveryDelay)
	return uc.vehicleRepository.Purchase(ctx, identity.SurrogateKey, req.Type, cost, req.Coords, deliveryAt)
}

// SetStatus moves a vehicle within the canonical status set. Only the owner
// may transition their vehicle.
func (uc *vehiclesUsecase) SetStatus(ctx context.Context, subjectPlayerID int, vehicleID, status string) error {
	requestID := middleware.GetRequestID(ctx)

	if !domain.VehicleStatuses[status] {
		logger.AccessLogger.Warn("Unknown vehicle status",
			zap.String("request_id", requestID),
			zap.String("status", status))
		return fmt.Errorf("%w: unknown vehicle status", domain.ErrValidation)
	}

	if err := uc.authorizeOwner(ctx, subjectPlayerID, vehicleID); err != nil {
		return err
	}
	return uc.vehicleRepository.SetStatus(ctx, vehicleID, status)
}

func (uc *vehiclesUsecase) MarkDelivered(ctx context.Context, subjectPlayerID int, vehicleID string) error {
	if err := uc.authorizeOwner(ctx, subjectPlayerID, vehicleID); err != nil {
		return err
	}
	return uc.vehicleRepository.MarkDelivered(ctx, vehicleID)
}

func (uc *vehiclesUsecase) authorizeOwner(ctx context.Context, subjectPlayerID int, vehicleID string) error {
	vehicle, err := uc.vehicleRepository.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	identity, err := uc.identityResolver.ResolveIdentity(ctx, domain.RefByID(subjectPlayerID))
	if err != nil {
		return err
	}
	if vehicle.OwnerID != identity.SurrogateKey {
		requestID := middleware.GetRequestID(ctx)
		logger.AccessLogger.Warn("Vehicle mutation rejected",
			zap.String("request_id", requestID),
			zap.Int("subject", subjectPlayerID),
			zap.String("vehicle_id", vehicleID))
		return domain.ErrVehicleAccess
	}
	return nil
}
