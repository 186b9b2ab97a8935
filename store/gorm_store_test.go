package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDiscountStore_CreateConflict(t *testing.T) {
	db, mock := newMockGorm(t)
	s := NewDiscountStore(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "discounts" WHERE code = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := s.Create(context.Background(), &models.Discount{Code: "FEST10", Type: models.DiscountPercentage, Value: 10})
	require.Error(t, err)
	assert.Equal(t, 409, utils.StatusCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscountStore_DeleteMissing(t *testing.T) {
	db, mock := newMockGorm(t)
	s := NewDiscountStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "discounts" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, utils.StatusCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscountStore_FindByCodeNormalizes(t *testing.T) {
	db, mock := newMockGorm(t)
	s := NewDiscountStore(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "discounts" WHERE code = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "type", "value", "is_active"}).
			AddRow(id.String(), "FEST10", "percentage", 10.0, true))

	d, err := s.FindByCode(context.Background(), " fest10 ")
	require.NoError(t, err)
	assert.Equal(t, "FEST10", d.Code)
	assert.Equal(t, models.DiscountPercentage, d.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderStore_UpdateStatus(t *testing.T) {
	orderCols := []string{"id", "order_number", "status", "email", "total_amount", "created_at"}

	t.Run("allowed transition is saved", func(t *testing.T) {
		db, mock := newMockGorm(t)
		s := NewOrderStore(db)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow(id.String(), "STR-20261019-000001", "pending", "a@b.co", 1200.0, time.Now()))
		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		o, err := s.UpdateStatus(context.Background(), id, models.OrderConfirmed, nil)
		require.NoError(t, err)
		assert.Equal(t, models.OrderConfirmed, o.Status)
		assert.NotNil(t, o.ConfirmedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("illegal transition rolls back", func(t *testing.T) {
		db, mock := newMockGorm(t)
		s := NewOrderStore(db)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow(id.String(), "STR-20261019-000002", "delivered", "a@b.co", 800.0, time.Now()))
		mock.ExpectRollback()

		_, err := s.UpdateStatus(context.Background(), id, models.OrderConfirmed, nil)
		require.Error(t, err)
		assert.Equal(t, 400, utils.StatusCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing order", func(t *testing.T) {
		db, mock := newMockGorm(t)
		s := NewOrderStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "orders"`).
			WillReturnRows(sqlmock.NewRows(orderCols))
		mock.ExpectRollback()

		_, err := s.UpdateStatus(context.Background(), uuid.New(), models.OrderConfirmed, nil)
		require.Error(t, err)
		assert.Equal(t, 404, utils.StatusCode(err))
	})
}

func TestProfileStore_IsAdmin(t *testing.T) {
	db, mock := newMockGorm(t)
	s := NewProfileStore(db)
	admin := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_admin"}).AddRow(admin.String(), "ops@strevo.in", true))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_admin"}))

	ok, err := s.IsAdmin(context.Background(), admin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsAdmin(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
