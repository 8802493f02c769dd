package repository

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type vehiclesRepository struct {
	db *gorm.DB
}

func NewVehiclesRepository(db *gorm.DB) domain.VehicleRepository {
	return &vehiclesRepository{
		db: db,
	}
}

func (r *vehiclesRepository) ListByOwner(ctx context.Context, surrogateKey uint) ([]domain.Vehicle, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListByOwner called", zap.String("request_id", requestID), zap.Uint("owner", surrogateKey))

	var vehicles []domain.Vehicle
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", surrogateKey).
		Order("vehicle_id").
		Find(&vehicles).Error; err != nil {
		logger.DBLogger.Error("Failed to list vehicles", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return vehicles, nil
}

func (r *vehiclesRepository) ListOthers(ctx context.Context, surrogateKey uint) ([]domain.VehicleMarker, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListOthers called", zap.String("request_id", requestID), zap.Uint("owner", surrogateKey))

	var markers []domain.VehicleMarker
	if err := r.db.WithContext(ctx).
		Table("vehicles").
		Select("vehicles.vehicle_id, players.player_id, players.username, vehicles.type, vehicles.status, vehicles.coords").
		Joins("JOIN players ON vehicles.owner_id = players.id").
		Where("vehicles.owner_id <> ?", surrogateKey).
		Scan(&markers).Error; err != nil {
		logger.DBLogger.Error("Failed to list other vehicles", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return markers, nil
}

// Purchase debits the owner and inserts the vehicle in one transaction. The
// debit is a single conditional update: zero affected rows with a live
// player row means the balance was short.
func (r *vehiclesRepository) Purchase(ctx context.Context, surrogateKey uint, vehicleType string, cost float64, coords domain.Coords, deliveryAt time.Time) (*domain.Vehicle, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("Purchase called",
		zap.String("request_id", requestID),
		zap.Uint("owner", surrogateKey),
		zap.String("type", vehicleType))

	var vehicle domain.Vehicle
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Player{}).
			Where("id = ? AND bank_balance >= ?", surrogateKey, cost).
			Update("bank_balance", gorm.Expr("bank_balance - ?", cost))
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

		var maxSuffix int
		if err := tx.Raw("SELECT COALESCE(MAX(CAST(SUBSTRING(vehicle_id, 4) AS UNSIGNED)), 0) FROM vehicles FOR UPDATE").
			Scan(&maxSuffix).Error; err != nil {
			logger.DBLogger.Error("Failed to read max vehicle suffix", zap.String("request_id", requestID), zap.Error(err))
			return err
		}

		vehicle = domain.Vehicle{
			VehicleID:         fmt.Sprintf("CT-%03d", maxSuffix+1),
			OwnerID:           surrogateKey,
			Type:              vehicleType,
			Status:            domain.StatusNew,
			Battery:           100,
			Cost:              cost,
			Coords:            coords,
			PurchaseDate:      time.Now(),
			DeliveryTimestamp: &deliveryAt,
		}
		if err := tx.Create(&vehicle).Error; err != nil {
			logger.DBLogger.Error("Failed to create vehicle", zap.String("request_id", requestID), zap.Error(err))
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Vehicle purchased",
		zap.String("request_id", requestID),
		zap.String("vehicle_id", vehicle.VehicleID),
		zap.Uint("owner", surrogateKey))
	return &vehicle, nil
}

func (r *vehiclesRepository) GetByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	requestID := middleware.GetRequestID(ctx)

	var vehicle domain.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "vehicle_id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Vehicle not found", zap.String("request_id", requestID), zap.String("vehicle_id", vehicleID))
			return nil, domain.ErrVehicleNotFound
		}
		logger.DBLogger.Error("Failed to get vehicle", zap.String("request_id", requestID), zap.Error(err))
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehiclesRepository) SetStatus(ctx context.Context, vehicleID, status string) error {
	requestID := middleware.GetRequestID(ctx)

	result := r.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("vehicle_id = ?", vehicleID).
		Update("status", status)
	if result.Error != nil {
		logger.DBLogger.Error("Failed to set status", zap.String("request_id", requestID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	logger.DBLogger.Info("Vehicle status updated",
		zap.String("request_id", requestID),
		zap.String("vehicle_id", vehicleID),
		zap.String("status", status))
	return nil
}

// MarkDelivered clears the delivery timestamp and parks the vehicle.
func (r *vehiclesRepository) MarkDelivered(ctx context.Context, vehicleID string) error {
	requestID := middleware.GetRequestID(ctx)

	result := r.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("vehicle_id = ?", vehicleID).
		Updates(map[string]interface{}{
			"delivery_timestamp": nil,
			"status":             domain.StatusParked,
		})
	if result.Error != nil {
		logger.DBLogger.Error("Failed to mark delivered", zap.String("request_id", requestID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	logger.DBLogger.Info("Vehicle delivered", zap.String("request_id", requestID), zap.String("vehicle_id", vehicleID))
	return nil
}

func (r *vehiclesRepository) CountByOwner(ctx context.Context, surrogateKey uint) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("owner_id = ?", surrogateKey).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
