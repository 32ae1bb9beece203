package db_models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ProcessingMode string

const (
	ProcessingModeAutomatic ProcessingMode = "automatic"
	ProcessingModeManual    ProcessingMode = "manual"
	ProcessingModeHybrid    ProcessingMode = "hybrid"
)

// PaymentSettings is the single persisted configuration row for the payment
// engine. Loaded through the settings service, mutated only by admin updates.
type PaymentSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// CSV of PaymentType values, e.g. "credit_card,mobile_money".
	EnabledMethods string      `gorm:"type:text" json:"enabled_methods"`
	DefaultMethod  PaymentType `gorm:"size:32" json:"default_method"`

	ProcessingMode ProcessingMode `gorm:"size:16" json:"processing_mode"`

	// Hybrid-mode thresholds. AutoApproveBelow must not exceed
	// RequireManualVerificationAbove; amounts between the two fall into the
	// hybrid tier.
	AutoApproveBelow               decimal.Decimal `gorm:"type:decimal(15,2)" json:"auto_approve_below"`
	RequireManualVerificationAbove decimal.Decimal `gorm:"type:decimal(15,2)" json:"require_manual_verification_above"`

	MaxTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"max_transaction_amount"`
	MaxDailyAmount       decimal.Decimal `gorm:"type:decimal(15,2)" json:"max_daily_amount"`

	// Bank transfer sub-config, surfaced on the catalog entry.
	BankName          string `gorm:"size:100" json:"bank_name"`
	BankAccountName   string `gorm:"size:100" json:"bank_account_name"`
	BankAccountNumber string `gorm:"size:100" json:"bank_account_number"`

	// Company profile, rendered onto receipts.
	CompanyName    string `gorm:"size:100" json:"company_name"`
	CompanyAddress string `gorm:"size:255" json:"company_address"`
	CompanyContact string `gorm:"size:100" json:"company_contact"`

	// Notification pass-through; not processed by the engine.
	NotifyOnPayment   bool   `json:"notify_on_payment"`
	NotificationEmail string `gorm:"size:100" json:"notification_email"`
	ReceiptFooter     string `gorm:"size:255" json:"receipt_footer"`

	UpdatedAt int64 `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentSettings) TableName() string { return "payment_settings" }

// IsMethodEnabled checks whether the given payment type appears in the
// enabled-methods CSV.
func (s *PaymentSettings) IsMethodEnabled(t PaymentType) bool {
	if s == nil || strings.TrimSpace(s.EnabledMethods) == "" {
		return false
	}
	for _, p := range strings.Split(s.EnabledMethods, ",") {
		if PaymentType(strings.TrimSpace(p)) == t {
			return true
		}
	}
	return false
}

// EnabledMethodList splits the CSV into payment types, preserving order.
func (s *PaymentSettings) EnabledMethodList() []PaymentType {
	if s == nil || strings.TrimSpace(s.EnabledMethods) == "" {
		return nil
	}
	parts := strings.Split(s.EnabledMethods, ",")
	methods := make([]PaymentType, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			methods = append(methods, PaymentType(trimmed))
		}
	}
	return methods
}
