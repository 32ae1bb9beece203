package services

import (
	"github.com/shopspring/decimal"

	"trippay/internal/models/db_models"
)

// RouteVerification classifies an amount under the current settings. The
// classification is decided once, at transaction creation, and is immutable
// afterwards.
//
// Boundary amounts resolve to the lenient side: an amount equal to
// AutoApproveBelow routes automatic and an amount equal to
// RequireManualVerificationAbove routes manual, so a boundary amount never
// lands in the narrower hybrid band. Hybrid is a classification only; it
// executes on the manual queue path.
func RouteVerification(amount decimal.Decimal, settings *db_models.PaymentSettings) db_models.VerificationMethod {
	switch settings.ProcessingMode {
	case db_models.ProcessingModeAutomatic:
		return db_models.VerificationAutomatic
	case db_models.ProcessingModeManual:
		return db_models.VerificationManual
	}

	if amount.LessThanOrEqual(settings.AutoApproveBelow) {
		return db_models.VerificationAutomatic
	}
	if amount.GreaterThanOrEqual(settings.RequireManualVerificationAbove) {
		return db_models.VerificationManual
	}
	return db_models.VerificationHybrid
}
