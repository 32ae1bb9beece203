package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trippay/internal/models/db_models"
)

type SettingsRepositoryInterface interface {
	Load(ctx context.Context) (*db_models.PaymentSettings, error)
	Save(ctx context.Context, settings *db_models.PaymentSettings) error
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &SettingsRepository{db: db}
}

type SettingsRepository struct {
	db *gorm.DB
}

// Load returns the single settings row, or nil when none has been persisted
// yet; the service layer substitutes defaults.
func (r *SettingsRepository) Load(ctx context.Context) (*db_models.PaymentSettings, error) {

	var settings db_models.PaymentSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *db_models.PaymentSettings) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Save(settings).Error
	})
}
