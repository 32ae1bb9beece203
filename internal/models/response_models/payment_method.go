package response_models

// BankAccountConfig is the transfer destination surfaced on the bank
// transfer catalog entry.
type BankAccountConfig struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

// PaymentMethod is a catalog entry projected from settings; methods are
// generated, never persisted.
type PaymentMethod struct {
	ID                         string             `json:"id"`
	Type                       string             `json:"type"`
	Name                       string             `json:"name"`
	Icon                       string             `json:"icon"`
	Enabled                    bool               `json:"enabled"`
	RequiresManualVerification bool               `json:"requires_manual_verification"`
	AutoApprove                bool               `json:"auto_approve"`
	MaxAmount                  string             `json:"max_amount"`
	BankAccount                *BankAccountConfig `json:"bank_account,omitempty"`
}
