package repository

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	logger.DBLogger = zap.NewNop()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehiclesRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `vehicles` WHERE owner_id = \\? ORDER BY vehicle_id").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "owner_id", "type", "status", "coords"}).
			AddRow("CT-001", 9, "sedan", "active", []byte("[30.2672,-97.7431]")).
			AddRow("CT-002", 9, "van", "parked", nil))

	vehicles, err := repo.ListByOwner(context.Background(), 9)
	assert.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "CT-001", vehicles[0].VehicleID)
	assert.Equal(t, domain.Coords{30.2672, -97.7431}, vehicles[0].Coords)
	assert.Nil(t, vehicles[1].Coords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOthers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehiclesRepository(db)

	mock.ExpectQuery("SELECT vehicles.vehicle_id, players.player_id, players.username, vehicles.type, vehicles.status, vehicles.coords FROM `vehicles` JOIN players ON vehicles.owner_id = players.id WHERE vehicles.owner_id <> \\?").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "player_id", "username", "type", "status", "coords"}).
			AddRow("CT-007", 55, "bob", "limo", "fare", []byte("[40.7128,-74.006]")))

	markers, err := repo.ListOthers(context.Background(), 9)
	assert.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "bob", markers[0].Username)
	assert.Equal(t, "fare", markers[0].Status)
}

func TestPurchase(t *testing.T) {
	deliveryAt := time.Now().Add(30 * time.Minute)

	t.Run("Success Assigns Next ID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `players` SET `bank_balance`=bank_balance - \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT COALESCE\\(MAX\\(CAST\\(SUBSTRING\\(vehicle_id, 4\\) AS UNSIGNED\\)\\), 0\\) FROM vehicles FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(7))
		mock.ExpectExec("INSERT INTO `vehicles`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		vehicle, err := repo.Purchase(context.Background(), 9, "sedan", 25000, domain.Coords{30.2672, -97.7431}, deliveryAt)
		assert.NoError(t, err)
		assert.Equal(t, "CT-008", vehicle.VehicleID)
		assert.Equal(t, domain.StatusNew, vehicle.Status)
		assert.Equal(t, 100.0, vehicle.Battery)
		require.NotNil(t, vehicle.DeliveryTimestamp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `players` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `players` WHERE id = \\?").
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.Purchase(context.Background(), 9, "limo", 68000, nil, deliveryAt)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Owner Missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `players` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `players` WHERE id = \\?").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectRollback()

		_, err := repo.Purchase(context.Background(), 99, "sedan", 25000, nil, deliveryAt)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectQuery("SELECT \\* FROM `vehicles` WHERE vehicle_id = \\?").
			WithArgs("CT-001", 1).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "owner_id", "status"}).
				AddRow("CT-001", 9, "active"))

		vehicle, err := repo.GetByID(context.Background(), "CT-001")
		assert.NoError(t, err)
		assert.Equal(t, uint(9), vehicle.OwnerID)
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectQuery("SELECT \\* FROM `vehicles` WHERE vehicle_id = \\?").
			WithArgs("CT-404", 1).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))

		_, err := repo.GetByID(context.Background(), "CT-404")
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `vehicles` SET `status`=\\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SetStatus(context.Background(), "CT-001", domain.StatusMaintenance)
		assert.NoError(t, err)
	})

	t.Run("Unknown Vehicle", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVehiclesRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `vehicles` SET `status`=\\?").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.SetStatus(context.Background(), "CT-404", domain.StatusParked)
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

func TestMarkDelivered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehiclesRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `vehicles` SET `delivery_timestamp`=\\?,`status`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkDelivered(context.Background(), "CT-001")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehiclesRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `vehicles` WHERE owner_id = \\?").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByOwner(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}
