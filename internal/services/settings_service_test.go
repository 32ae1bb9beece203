package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"trippay/internal/models/db_models"
	"trippay/internal/models/request_models"
	"trippay/internal/services"
	mem "trippay/pkg/memcache"
	"trippay/pkg/utils"
)

func newSettingsService(repo *fakeSettingsRepo) services.SettingsServiceInterface {
	return services.NewSettingsService(repo, mem.NewSettingsCache(), zap.NewNop())
}

func TestSettingsService_LoadFallsBackToDefaults(t *testing.T) {
	svc := newSettingsService(&fakeSettingsRepo{})

	settings, err := svc.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, db_models.ProcessingModeHybrid, settings.ProcessingMode)
	assert.True(t, settings.AutoApproveBelow.Equal(decimal.NewFromInt(1_000)))
	assert.True(t, settings.RequireManualVerificationAbove.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, settings.IsMethodEnabled(db_models.PaymentTypeCreditCard))
	assert.True(t, settings.IsMethodEnabled(db_models.PaymentTypeCash))
}

func TestSettingsService_UpdateMergesShallow(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := newSettingsService(repo)

	mode := "manual"
	company := "Wanderlust Travels"
	updated, err := svc.Update(context.Background(), request_models.UpdatePaymentSettingsRequest{
		ProcessingMode: &mode,
		CompanyName:    &company,
	})

	assert.NoError(t, err)
	assert.Equal(t, db_models.ProcessingModeManual, updated.ProcessingMode)
	assert.Equal(t, "Wanderlust Travels", updated.CompanyName)
	// Untouched fields keep their previous values.
	assert.True(t, updated.AutoApproveBelow.Equal(decimal.NewFromInt(1_000)))
	assert.NotNil(t, repo.stored)

	// Subsequent loads observe the persisted value.
	loaded, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, db_models.ProcessingModeManual, loaded.ProcessingMode)
}

func TestSettingsService_UpdateEnabledMethods(t *testing.T) {
	svc := newSettingsService(&fakeSettingsRepo{})

	enabled := []string{"credit_card", "bank_transfer"}
	updated, err := svc.Update(context.Background(), request_models.UpdatePaymentSettingsRequest{
		EnabledMethods: &enabled,
	})

	assert.NoError(t, err)
	assert.True(t, updated.IsMethodEnabled(db_models.PaymentTypeCreditCard))
	assert.True(t, updated.IsMethodEnabled(db_models.PaymentTypeBankTransfer))
	assert.False(t, updated.IsMethodEnabled(db_models.PaymentTypeCash))
}

func TestSettingsService_RejectsThresholdsOutOfOrder(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := newSettingsService(repo)

	below := decimal.NewFromInt(20_000)
	above := decimal.NewFromInt(10_000)
	_, err := svc.Update(context.Background(), request_models.UpdatePaymentSettingsRequest{
		AutoApproveBelow:               &below,
		RequireManualVerificationAbove: &above,
	})

	assert.ErrorIs(t, err, utils.ErrSettingsInvalid)
	// Nothing was persisted.
	assert.Nil(t, repo.stored)
}

func TestSettingsService_RejectsUnknownProcessingMode(t *testing.T) {
	svc := newSettingsService(&fakeSettingsRepo{})

	mode := "turbo"
	_, err := svc.Update(context.Background(), request_models.UpdatePaymentSettingsRequest{
		ProcessingMode: &mode,
	})

	assert.ErrorIs(t, err, utils.ErrSettingsInvalid)
}

func TestSettingsService_EqualThresholdsAreValid(t *testing.T) {
	svc := newSettingsService(&fakeSettingsRepo{})

	both := decimal.NewFromInt(5_000)
	updated, err := svc.Update(context.Background(), request_models.UpdatePaymentSettingsRequest{
		AutoApproveBelow:               &both,
		RequireManualVerificationAbove: &both,
	})

	assert.NoError(t, err)
	assert.True(t, updated.AutoApproveBelow.Equal(updated.RequireManualVerificationAbove))
}
