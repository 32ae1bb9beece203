package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trippay/internal/models/db_models"
	"trippay/pkg/utils"
)

type TransactionRepositoryInterface interface {
	Insert(ctx context.Context, txn *db_models.PaymentTransaction) error
	Update(ctx context.Context, txn *db_models.PaymentTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error)
	ListByStatus(ctx context.Context, statuses ...db_models.PaymentStatus) ([]db_models.PaymentTransaction, error)
	ListByBooking(ctx context.Context, bookingID string) ([]db_models.PaymentTransaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r *TransactionRepository) Insert(ctx context.Context, txn *db_models.PaymentTransaction) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		if txn.ID != uuid.Nil {
			var count int64
			if err := tx.WithContext(ctx).Model(&db_models.PaymentTransaction{}).
				Where("id = ?", txn.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return utils.ErrDuplicateTransaction
			}
		}

		return tx.WithContext(ctx).Create(txn).Error
	})
}

// Update replaces the full record. The write only lands when the stored
// version still matches the version the caller read; a stale write returns
// ErrVersionConflict so lost updates surface instead of overwriting.
func (r *TransactionRepository) Update(ctx context.Context, txn *db_models.PaymentTransaction) error {

	readVersion := txn.Version
	txn.Version = readVersion + 1

	res := r.db.WithContext(ctx).
		Model(&db_models.PaymentTransaction{}).
		Where("id = ? AND version = ?", txn.ID, readVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(txn)

	if res.Error != nil {
		txn.Version = readVersion
		return res.Error
	}

	if res.RowsAffected == 0 {
		txn.Version = readVersion

		var count int64
		if err := r.db.WithContext(ctx).Model(&db_models.PaymentTransaction{}).
			Where("id = ?", txn.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return utils.ErrTransactionNotFound
		}
		return utils.ErrVersionConflict
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error) {

	var txn db_models.PaymentTransaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepository) ListByStatus(ctx context.Context, statuses ...db_models.PaymentStatus) ([]db_models.PaymentTransaction, error) {

	var txns []db_models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *TransactionRepository) ListByBooking(ctx context.Context, bookingID string) ([]db_models.PaymentTransaction, error) {

	var txns []db_models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
