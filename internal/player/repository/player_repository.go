package repository

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &playerRepository{
		db: db,
	}
}

// ResolveIdentity maps a public player_id or username to the internal
// identity. Resource tables key on the surrogate value, so every ownership
// check goes through here first.
func (r *playerRepository) ResolveIdentity(ctx context.Context, ref domain.PlayerRef) (domain.Identity, error) {
	requestID := middleware.GetRequestID(ctx)

	query := r.db.WithContext(ctx).Model(&domain.Player{})
	if ref.PlayerID != nil {
		query = query.Where("player_id = ?", *ref.PlayerID)
	} else {
		query = query.Where("username = ?", ref.Username)
	}

	var player domain.Player
	if err := query.First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Identity not found",
				zap.String("request_id", requestID),
				zap.String("username", ref.Username))
			return domain.Identity{}, domain.ErrPlayerNotFound
		}
		logger.DBLogger.Error("Failed to resolve identity", zap.String("request_id", requestID), zap.Error(err))
		return domain.Identity{}, err
	}

	return domain.Identity{
		SurrogateKey: player.ID,
		PlayerID:     player.PlayerID,
		Username:     player.Username,
	}, nil
}

func (r *playerRepository) GetProfile(ctx context.Context, surrogateKey uint) (*domain.PlayerProfile, error) {
	requestID := middleware.GetRequestID(ctx)

	var player domain.Player
	if err := r.db.WithContext(ctx).First(&player, "id = ?", surrogateKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		logger.DBLogger.Error("Failed to get profile", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}

	return &domain.PlayerProfile{
		PlayerID:    player.PlayerID,
		Username:    player.Username,
		BankBalance: player.BankBalance,
		Score:       player.Score,
		CreatedAt:   player.CreatedAt,
	}, nil
}

func (r *playerRepository) GetBalance(ctx context.Context, surrogateKey uint) (float64, error) {
	requestID := middleware.GetRequestID(ctx)

	var balance float64
	err := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("id = ?", surrogateKey).
		Select("bank_balance").
		Scan(&balance).Error
	if err != nil {
		logger.DBLogger.Error("Failed to get balance", zap.String("request_id", requestID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// GetSlots reports parking capacity across the player's garages and lots
// against the number of vehicles owned.
func (r *playerRepository) GetSlots(ctx context.Context, surrogateKey uint) (domain.SlotsResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	var capacity int
	if err := r.db.WithContext(ctx).Model(&domain.Garage{}).
		Where("owner_id = ?", surrogateKey).
		Select("COALESCE(SUM(capacity), 0)").
		Scan(&capacity).Error; err != nil {
		logger.DBLogger.Error("Failed to sum capacity", zap.String("request_id", requestID), zap.Error(err))
		return domain.SlotsResponse{}, err
	}

	var used int64
	if err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("owner_id = ?", surrogateKey).
		Count(&used).Error; err != nil {
		logger.DBLogger.Error("Failed to count vehicles", zap.String("request_id", requestID), zap.Error(err))
		return domain.SlotsResponse{}, err
	}

	available := capacity - int(used)
	if available < 0 {
		available = 0
	}
	return domain.SlotsResponse{
		Capacity:  capacity,
		Used:      int(used),
		Available: available,
	}, nil
}
