package repository

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"errors"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

// CreatePlayer inserts a new player, assigning player_id = max+1 inside the
// transaction. The FOR UPDATE lock keeps concurrent signups sequential.
func (r *authRepository) CreatePlayer(ctx context.Context, username, email, passwordHash string, bankBalance float64) (*domain.Player, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreatePlayer called", zap.String("request_id", requestID), zap.String("username", username))

	var player domain.Player
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Player{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error; err != nil {
			logger.DBLogger.Error("Failed to check duplicates", zap.String("request_id", requestID), zap.Error(err))
			return err
		}
		if count > 0 {
			logger.DBLogger.Warn("Duplicate username or email", zap.String("request_id", requestID), zap.String("username", username))
			return domain.ErrDuplicatePlayer
		}

		var maxID int
		if err := tx.Raw("SELECT COALESCE(MAX(player_id), 0) FROM players FOR UPDATE").Scan(&maxID).Error; err != nil {
			logger.DBLogger.Error("Failed to read max player_id", zap.String("request_id", requestID), zap.Error(err))
			return err
		}

		player = domain.Player{
			PlayerID:    maxID + 1,
			Username:    username,
			Email:       email,
			Password:    passwordHash,
			BankBalance: bankBalance,
		}
		if err := tx.Create(&player).Error; err != nil {
			// Concurrent signup can slip past the count check and trip the
			// unique index instead. Treat that as a duplicate, not a 500.
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
				logger.DBLogger.Warn("Duplicate username or email", zap.String("request_id", requestID), zap.String("username", username))
				return domain.ErrDuplicatePlayer
			}
			logger.DBLogger.Error("Failed to create player", zap.String("request_id", requestID), zap.Error(err))
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully created player",
		zap.String("request_id", requestID),
		zap.String("username", username),
		zap.Int("player_id", player.PlayerID))
	return &player, nil
}

func (r *authRepository) FindByPlayerID(ctx context.Context, playerID int) (*domain.Player, error) {
	requestID := middleware.GetRequestID(ctx)
	var player domain.Player
	if err := r.db.WithContext(ctx).First(&player, "player_id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.Int("player_id", playerID))
			return nil, domain.ErrPlayerNotFound
		}
		logger.DBLogger.Error("Failed to get player", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *authRepository) FindByUsername(ctx context.Context, username string) (*domain.Player, error) {
	requestID := middleware.GetRequestID(ctx)
	var player domain.Player
	if err := r.db.WithContext(ctx).First(&player, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Player not found", zap.String("request_id", requestID), zap.String("username", username))
			return nil, domain.ErrPlayerNotFound
		}
		logger.DBLogger.Error("Failed to get player", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *authRepository) UpdatePassword(ctx context.Context, surrogateKey uint, passwordHash string) error {
	requestID := middleware.GetRequestID(ctx)
	result := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("id = ?", surrogateKey).
		Update("password", passwordHash)
	if result.Error != nil {
		logger.DBLogger.Error("Failed to update password", zap.String("request_id", requestID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPlayerNotFound
	}
	logger.DBLogger.Info("Password updated", zap.String("request_id", requestID), zap.Uint("surrogate_key", surrogateKey))
	return nil
}
