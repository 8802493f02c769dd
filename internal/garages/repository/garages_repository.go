package repository

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type garagesRepository struct {
	db *gorm.DB
}

func NewGaragesRepository(db *gorm.DB) domain.GarageRepository {
	return &garagesRepository{
		db: db,
	}
}

func (r *garagesRepository) ListByOwner(ctx context.Context, surrogateKey uint) ([]domain.Garage, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListByOwner called", zap.String("request_id", requestID), zap.Uint("owner", surrogateKey))

	var garages []domain.Garage
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", surrogateKey).
		Order("id").
		Find(&garages).Error; err != nil {
		logger.DBLogger.Error("Failed to list garages", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return garages, nil
}

// Purchase debits the first month's cost and inserts the garage in one
// transaction, using the same conditional-update debit as vehicles.
func (r *garagesRepository) Purchase(ctx context.Context, surrogateKey uint, req domain.PurchaseGarageRequest) (*domain.Garage, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Purchase called",
		zap.String("request_id", requestID),
		zap.Uint("owner", surrogateKey),
		zap.String("name", req.Name))

	var garage domain.Garage
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Player{}).
			Where("id = ? AND bank_balance >= ?", surrogateKey, req.CostMonthly).
			Update("bank_balance", gorm.Expr("bank_balance - ?", req.CostMonthly))
		if result.Error != nil {
			logger.DBLogger.Error("Failed to debit balance", zap.String("request_id", requestID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&domain.Player{}).Where("id = ?", surrogateKey).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrPlayerNotFound
			}
			logger.DBLogger.Warn("Insufficient funds", zap.String("request_id", requestID), zap.Uint("owner", surrogateKey))
			return domain.ErrInsufficientFunds
		}

		garage = domain.Garage{
			OwnerID:     surrogateKey,
			Name:        req.Name,
			Coords:      req.Coords,
			Capacity:    req.Capacity,
			Type:        req.Type,
			CostMonthly: req.CostMonthly,
		}
		if err := tx.Create(&garage).Error; err != nil {
			logger.DBLogger.Error("Failed to create garage", zap.String("request_id", requestID), zap.Error(err))
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Garage purchased",
		zap.String("request_id", requestID),
		zap.Uint("garage_id", garage.ID),
		zap.Uint("owner", surrogateKey))
	return &garage, nil
}

func (r *garagesRepository) TotalCapacity(ctx context.Context, surrogateKey uint) (int, error) {
	var capacity int
	if err := r.db.WithContext(ctx).Model(&domain.Garage{}).
		Where("owner_id = ?", surrogateKey).
		Select("COALESCE(SUM(capacity), 0)").
		Scan(&capacity).Error; err != nil {
		return 0, err
	}
	return capacity, nil
}
