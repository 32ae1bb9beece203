package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"trippay/internal/models/db_models"
	"trippay/internal/models/request_models"
	"trippay/internal/repositories"
	mem "trippay/pkg/memcache"
	"trippay/pkg/utils"
)

type SettingsServiceInterface interface {
	Load(ctx context.Context) (*db_models.PaymentSettings, error)
	Update(ctx context.Context, req request_models.UpdatePaymentSettingsRequest) (*db_models.PaymentSettings, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
	cache        *mem.SettingsCache
	logger       *zap.Logger
}

func NewSettingsService(
	settingsRepo repositories.SettingsRepositoryInterface,
	cache *mem.SettingsCache,
	logger *zap.Logger,
) SettingsServiceInterface {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// DefaultPaymentSettings is the documented fallback used when no settings
// row has been persisted yet.
func DefaultPaymentSettings() *db_models.PaymentSettings {
	return &db_models.PaymentSettings{
		EnabledMethods: strings.Join([]string{
			string(db_models.PaymentTypeCreditCard),
			string(db_models.PaymentTypeDebitCard),
			string(db_models.PaymentTypeMobileMoney),
			string(db_models.PaymentTypeBankTransfer),
			string(db_models.PaymentTypeCash),
		}, ","),
		DefaultMethod:                  db_models.PaymentTypeCreditCard,
		ProcessingMode:                 db_models.ProcessingModeHybrid,
		AutoApproveBelow:               decimal.NewFromInt(1_000),
		RequireManualVerificationAbove: decimal.NewFromInt(10_000),
		MaxTransactionAmount:           decimal.NewFromInt(1_000_000),
		MaxDailyAmount:                 decimal.NewFromInt(5_000_000),
		CompanyName:                    "TripPay Travel",
		CompanyAddress:                 "1 Marina Road",
		CompanyContact:                 "support@trippay.example",
		NotifyOnPayment:                true,
		ReceiptFooter:                  "Thank you for booking with us",
	}
}

func (s *SettingsService) Load(ctx context.Context) (*db_models.PaymentSettings, error) {

	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load payment settings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if settings == nil {
		settings = DefaultPaymentSettings()
	}

	s.cache.Set(settings)
	return settings, nil
}

// Update merges the partial request into the current settings, shallow per
// field, validates, persists, and returns the new value. Invalid threshold
// ordering is rejected here so the router never sees it.
func (s *SettingsService) Update(ctx context.Context, req request_models.UpdatePaymentSettingsRequest) (*db_models.PaymentSettings, error) {

	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load payment settings for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		settings = DefaultPaymentSettings()
	}

	applySettingsUpdate(settings, req)

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("failed to persist payment settings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.cache.Set(settings)

	s.logger.Info("payment settings updated",
		zap.String("processing_mode", string(settings.ProcessingMode)),
		zap.String("auto_approve_below", settings.AutoApproveBelow.String()),
		zap.String("require_manual_above", settings.RequireManualVerificationAbove.String()))

	return settings, nil
}

func applySettingsUpdate(settings *db_models.PaymentSettings, req request_models.UpdatePaymentSettingsRequest) {
	if req.EnabledMethods != nil {
		settings.EnabledMethods = strings.Join(*req.EnabledMethods, ",")
	}
	if req.DefaultMethod != nil {
		settings.DefaultMethod = db_models.PaymentType(*req.DefaultMethod)
	}
	if req.ProcessingMode != nil {
		settings.ProcessingMode = db_models.ProcessingMode(*req.ProcessingMode)
	}
	if req.AutoApproveBelow != nil {
		settings.AutoApproveBelow = *req.AutoApproveBelow
	}
	if req.RequireManualVerificationAbove != nil {
		settings.RequireManualVerificationAbove = *req.RequireManualVerificationAbove
	}
	if req.MaxTransactionAmount != nil {
		settings.MaxTransactionAmount = *req.MaxTransactionAmount
	}
	if req.MaxDailyAmount != nil {
		settings.MaxDailyAmount = *req.MaxDailyAmount
	}
	if req.BankName != nil {
		settings.BankName = *req.BankName
	}
	if req.BankAccountName != nil {
		settings.BankAccountName = *req.BankAccountName
	}
	if req.BankAccountNumber != nil {
		settings.BankAccountNumber = *req.BankAccountNumber
	}
	if req.CompanyName != nil {
		settings.CompanyName = *req.CompanyName
	}
	if req.CompanyAddress != nil {
		settings.CompanyAddress = *req.CompanyAddress
	}
	if req.CompanyContact != nil {
		settings.CompanyContact = *req.CompanyContact
	}
	if req.NotifyOnPayment != nil {
		settings.NotifyOnPayment = *req.NotifyOnPayment
	}
	if req.NotificationEmail != nil {
		settings.NotificationEmail = *req.NotificationEmail
	}
	if req.ReceiptFooter != nil {
		settings.ReceiptFooter = *req.ReceiptFooter
	}
}

func validateSettings(settings *db_models.PaymentSettings) error {
	switch settings.ProcessingMode {
	case db_models.ProcessingModeAutomatic, db_models.ProcessingModeManual, db_models.ProcessingModeHybrid:
	default:
		return fmt.Errorf("%w: unknown processing mode %q", utils.ErrSettingsInvalid, settings.ProcessingMode)
	}

	if settings.AutoApproveBelow.GreaterThan(settings.RequireManualVerificationAbove) {
		return fmt.Errorf("%w: auto_approve_below %s exceeds require_manual_verification_above %s",
			utils.ErrSettingsInvalid,
			settings.AutoApproveBelow.String(),
			settings.RequireManualVerificationAbove.String())
	}

	if settings.MaxTransactionAmount.IsNegative() || settings.MaxDailyAmount.IsNegative() {
		return fmt.Errorf("%w: transaction limits must not be negative", utils.ErrSettingsInvalid)
	}

	return nil
}
