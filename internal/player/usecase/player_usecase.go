package usecase

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"

	"go.uber.org/zap"
)

type PlayerUsecase interface {
	GetProfile(ctx context.Context, subjectPlayerID, targetPlayerID int) (*domain.PlayerProfile, error)
	GetBalance(ctx context.Context, subjectPlayerID int, username string) (float64, error)
	GetSlots(ctx context.Context, subjectPlayerID int, username string) (domain.SlotsResponse, error)
	GetVehicles(ctx context.Context, subjectPlayerID int, username string) ([]domain.Vehicle, error)
	GetGarages(ctx context.Context, subjectPlayerID int, username string) ([]domain.Garage, error)
}

type playerUsecase struct {
	playerRepository  domain.PlayerRepository
	vehicleRepository domain.VehicleRepository
	garageRepository  domain.GarageRepository
}

func NewPlayerUsecase(playerRepository domain.PlayerRepository, vehicleRepository domain.VehicleRepository, garageRepository domain.GarageRepository) PlayerUsecase {
	return &playerUsecase{
		playerRepository:  playerRepository,
		vehicleRepository: vehicleRepository,
		garageRepository:  garageRepository,
	}
}

// authorize resolves ref and checks it against the token subject. Resolution
// runs first, so an unknown target reports NotFound rather than Forbidden.
func (uc *playerUsecase) authorize(ctx context.Context, subjectPlayerID int, ref domain.PlayerRef) (domain.Identity, error) {
	identity, err := uc.playerRepository.ResolveIdentity(ctx, ref)
	if err != nil {
		return domain.Identity{}, err
	}
	if identity.PlayerID != subjectPlayerID {
		requestID := middleware.GetRequestID(ctx)
		logger.AccessLogger.Warn("Player data access rejected",
			zap.String("request_id", requestID),
			zap.Int("subject", subjectPlayerID),
			zap.Int("target", identity.PlayerID))
		return domain.Identity{}, domain.ErrPlayerAccess
	}
	return identity, nil
}

func (uc *playerUsecase) GetProfile(ctx context.Context, subjectPlayerID, targetPlayerID int) (*domain.PlayerProfile, error) {
	identity, err := uc.authorize(ctx, subjectPlayerID, domain.RefByID(targetPlayerID))
	if err != nil {
		return nil, err
	}
	return uc.playerRepository.GetProfile(ctx, identity.SurrogateKey)
}

func (uc *playerUsecase) GetBalance(ctx context.Context, subjectPlayerID int, username string) (float64, error) {
	identity, err := uc.authorize(ctx, subjectPlayerID, domain.RefByName(username))
	if err != nil {
		return 0, err
	}
	return uc.playerRepository.GetBalance(ctx, identity.SurrogateKey)
}

func (uc *playerUsecase) GetSlots(ctx context.Context, subjectPlayerID int, username string) (domain.SlotsResponse, error) {
	identity, err := uc.authorize(ctx, subjectPlayerID, domain.RefByName(username))
	if err != nil {
		return domain.SlotsResponse{}, err
	}
	return uc.playerRepository.GetSlots(ctx, identity.SurrogateKey)
}

func (uc *playerUsecase) GetVehicles(ctx context.Context, subjectPlayerID int, username string) ([]domain.Vehicle, error) {
	identity, err := uc.authorize(ctx, subjectPlayerID, domain.RefByName(username))
	if err != nil {
		return nil, err
	}
	return uc.vehicleRepository.ListByOwner(ctx, identity.SurrogateKey)
}

func (uc *playerUsecase) GetGarages(ctx context.Context, subjectPlayerID int, username string) ([]domain.Garage, error) {
	identity, err := uc.authorize(ctx, subjectPlayerID, domain.RefByName(username))
	if err != nil {
		return nil, err
	}
	return uc.garageRepository.ListByOwner(ctx, identity.SurrogateKey)
}
