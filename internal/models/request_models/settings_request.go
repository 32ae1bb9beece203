package request_models

import (
	"github.com/shopspring/decimal"
)

// UpdatePaymentSettingsRequest is a partial settings update. Only non-nil
// fields are applied; the merge is shallow per field, so callers changing a
// field supply its complete new value.
type UpdatePaymentSettingsRequest struct {
	EnabledMethods *[]string `json:"enabled_methods"`
	DefaultMethod  *string   `json:"default_method"`

	ProcessingMode *string `json:"processing_mode"`

	AutoApproveBelow               *decimal.Decimal `json:"auto_approve_below"`
	RequireManualVerificationAbove *decimal.Decimal `json:"require_manual_verification_above"`

	MaxTransactionAmount *decimal.Decimal `json:"max_transaction_amount"`
	MaxDailyAmount       *decimal.Decimal `json:"max_daily_amount"`

	BankName          *string `json:"bank_name"`
	BankAccountName   *string `json:"bank_account_name"`
	BankAccountNumber *string `json:"bank_account_number"`

	CompanyName    *string `json:"company_name"`
	CompanyAddress *string `json:"company_address"`
	CompanyContact *string `json:"company_contact"`

	NotifyOnPayment   *bool   `json:"notify_on_payment"`
	NotificationEmail *string `json:"notification_email"`
	ReceiptFooter     *string `json:"receipt_footer"`
}
