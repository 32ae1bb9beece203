package services

import (
	"github.com/shopspring/decimal"

	"trippay/internal/models/db_models"
	"trippay/internal/models/response_models"
)

// GatewayUnknown is recorded on transactions whose method has no processor.
// Such transactions are still stored for audit.
const GatewayUnknown = "unknown"

type methodSpec struct {
	Type                       db_models.PaymentType
	Name                       string
	Icon                       string
	Gateway                    string
	RequiresManualVerification bool
	AutoApprove                bool
	MaxAmount                  decimal.Decimal
}

// methodTable is static domain knowledge. Caps and verification flags are a
// compatibility contract with existing receipts and limits; the catalog is
// emitted in this order.
var methodTable = []methodSpec{
	{
		Type:        db_models.PaymentTypeCreditCard,
		Name:        "Credit Card",
		Icon:        "credit-card",
		Gateway:     "card_processor",
		AutoApprove: true,
		MaxAmount:   decimal.NewFromInt(50_000),
	},
	{
		Type:        db_models.PaymentTypeDebitCard,
		Name:        "Debit Card",
		Icon:        "debit-card",
		Gateway:     "card_processor",
		AutoApprove: true,
		MaxAmount:   decimal.NewFromInt(50_000),
	},
	{
		Type:        db_models.PaymentTypeMobileMoney,
		Name:        "Mobile Money",
		Icon:        "smartphone",
		Gateway:     "mobile_money",
		AutoApprove: true,
		MaxAmount:   decimal.NewFromInt(100_000),
	},
	{
		Type:                       db_models.PaymentTypeBankTransfer,
		Name:                       "Bank Transfer",
		Icon:                       "bank",
		Gateway:                    "bank_transfer",
		RequiresManualVerification: true,
		MaxAmount:                  decimal.NewFromInt(1_000_000),
	},
	{
		Type:                       db_models.PaymentTypeCash,
		Name:                       "Cash",
		Icon:                       "cash",
		Gateway:                    "manual",
		RequiresManualVerification: true,
		MaxAmount:                  decimal.NewFromInt(50_000),
	},
}

// GatewayForMethod resolves the processor key for a payment type. Unknown
// types map to GatewayUnknown rather than failing.
func GatewayForMethod(t db_models.PaymentType) string {
	for _, spec := range methodTable {
		if spec.Type == t {
			return spec.Gateway
		}
	}
	return GatewayUnknown
}

// ListMethods projects settings onto the fixed method table. Pure function,
// no I/O; entries come back in table order.
func ListMethods(settings *db_models.PaymentSettings) []response_models.PaymentMethod {
	methods := make([]response_models.PaymentMethod, 0, len(methodTable))
	for _, spec := range methodTable {
		method := response_models.PaymentMethod{
			ID:                         string(spec.Type),
			Type:                       string(spec.Type),
			Name:                       spec.Name,
			Icon:                       spec.Icon,
			Enabled:                    settings.IsMethodEnabled(spec.Type),
			RequiresManualVerification: spec.RequiresManualVerification,
			AutoApprove:                spec.AutoApprove,
			MaxAmount:                  spec.MaxAmount.String(),
		}

		if spec.Type == db_models.PaymentTypeBankTransfer {
			method.BankAccount = &response_models.BankAccountConfig{
				BankName:      settings.BankName,
				AccountName:   settings.BankAccountName,
				AccountNumber: settings.BankAccountNumber,
			}
		}

		methods = append(methods, method)
	}
	return methods
}
