package db_models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending              PaymentStatus = "pending"
	PaymentStatusCompleted            PaymentStatus = "completed"
	PaymentStatusRequiresVerification PaymentStatus = "requires_verification"
	PaymentStatusVerified             PaymentStatus = "verified"
	PaymentStatusDeclined             PaymentStatus = "declined"
	PaymentStatusFailed               PaymentStatus = "failed"
)

// IsTerminal reports whether no further status transition is permitted.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusVerified, PaymentStatusDeclined, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeCreditCard   PaymentType = "credit_card"
	PaymentTypeDebitCard    PaymentType = "debit_card"
	PaymentTypeMobileMoney  PaymentType = "mobile_money"
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
	PaymentTypeCash         PaymentType = "cash"
)

type VerificationMethod string

const (
	VerificationAutomatic VerificationMethod = "automatic"
	VerificationManual    VerificationMethod = "manual"
	VerificationHybrid    VerificationMethod = "hybrid"
)

type PaymentTransaction struct {
	BaseModel
	BookingID string `gorm:"size:64;index"`
	UserID    string `gorm:"size:64;index"`

	Amount   decimal.Decimal `gorm:"type:decimal(15,2)"`
	Currency string          `gorm:"size:3"` // ISO 4217

	PaymentMethod      PaymentType        `gorm:"size:32;index"`
	Gateway            string             `gorm:"size:64"`
	Status             PaymentStatus      `gorm:"size:32;index"`
	VerificationMethod VerificationMethod `gorm:"size:16"` // decided once at creation

	// Opaque reference returned by the external processor on the automatic path.
	GatewayTxnID string `gorm:"size:128"`

	// Pass-through fields from the payment form (masked card suffix, phone, notes).
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Unix seconds, set only on the transitions that own them.
	ProcessedAt *int64
	VerifiedAt  *int64

	VerifiedBy        *string `gorm:"size:64"`
	VerificationNotes *string `gorm:"type:text"`

	ReceiptURL *string `gorm:"type:text"`

	// Reserved for a future automatic-retry policy; never incremented here.
	RetryCount int `gorm:"default:0"`

	// Optimistic lock. Update must match the version it read.
	Version int `gorm:"default:0"`
}

func (PaymentTransaction) TableName() string { return "payment_transactions" }

// SetMetadata replaces the metadata blob with the given key/value pairs.
func (t *PaymentTransaction) SetMetadata(m map[string]string) {
	if m == nil {
		m = map[string]string{}
	}
	b, _ := json.Marshal(m)
	t.Metadata = b
}

// MetadataMap decodes the metadata blob. A malformed or empty blob yields an
// empty map rather than an error; metadata is opaque pass-through.
func (t *PaymentTransaction) MetadataMap() map[string]string {
	m := map[string]string{}
	if len(t.Metadata) > 0 {
		_ = json.Unmarshal(t.Metadata, &m)
	}
	return m
}
