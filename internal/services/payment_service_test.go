package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trippay/internal/gateways"
	"trippay/internal/models/db_models"
	"trippay/internal/models/request_models"
	"trippay/internal/services"
	"trippay/pkg/utils"
)

func newPaymentService(repo *fakeTransactionRepo, registry *gateways.Registry) services.PaymentServiceInterface {
	return services.NewPaymentService(
		repo,
		&fakeSettingsService{settings: hybridSettings()},
		registry,
		utils.NewKeyedMutex(),
		zap.NewNop(),
	)
}

func cardForm(amount decimal.Decimal) request_models.SubmitPaymentRequest {
	return request_models.SubmitPaymentRequest{
		BookingID:     "booking-42",
		UserID:        "user-7",
		Amount:        amount,
		Currency:      "USD",
		PaymentMethod: "credit_card",
		Metadata:      map[string]string{"card_last4": "4242"},
	}
}

func TestSubmit_AutomaticPathCompletes(t *testing.T) {
	repo := newFakeTransactionRepo()
	gw := &stubGateway{
		name:   "card_processor",
		result: &gateways.ChargeResult{GatewayTxnID: "card_processor:abc123", ProcessedAt: time.Now()},
	}
	svc := newPaymentService(repo, gateways.NewRegistry(gw))

	txn, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(500)))

	require.NoError(t, err)
	assert.Equal(t, db_models.VerificationAutomatic, txn.VerificationMethod)
	assert.Equal(t, db_models.PaymentStatusCompleted, txn.Status)
	assert.Equal(t, "card_processor", txn.Gateway)
	assert.Equal(t, "card_processor:abc123", txn.GatewayTxnID)
	assert.NotNil(t, txn.ProcessedAt)
	assert.NotNil(t, txn.VerifiedAt)
	assert.Equal(t, 1, gw.charges)

	stored, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, db_models.PaymentStatusCompleted, stored.Status)
}

func TestSubmit_GatewayFailureIsTerminalAndSurfaced(t *testing.T) {
	repo := newFakeTransactionRepo()
	gw := &stubGateway{
		name: "card_processor",
		err:  utils.NewGatewayError("card_processor", "insufficient funds", nil),
	}
	svc := newPaymentService(repo, gateways.NewRegistry(gw))

	txn, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(500)))

	var gwErr *utils.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "insufficient funds", gwErr.Reason)

	require.NotNil(t, txn)
	assert.Equal(t, db_models.PaymentStatusFailed, txn.Status)
	assert.NotNil(t, txn.ProcessedAt)
	assert.Equal(t, "insufficient funds", txn.MetadataMap()["failure_reason"])

	// The failed attempt stays recorded for audit.
	stored, _ := repo.GetByID(context.Background(), txn.ID)
	require.NotNil(t, stored)
	assert.Equal(t, db_models.PaymentStatusFailed, stored.Status)
}

func TestSubmit_ManualPathQueuesWithoutCharging(t *testing.T) {
	repo := newFakeTransactionRepo()
	gw := &stubGateway{
		name:   "card_processor",
		result: &gateways.ChargeResult{GatewayTxnID: "never-used"},
	}
	svc := newPaymentService(repo, gateways.NewRegistry(gw))

	txn, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(15_000)))

	require.NoError(t, err)
	assert.Equal(t, db_models.VerificationManual, txn.VerificationMethod)
	assert.Equal(t, db_models.PaymentStatusRequiresVerification, txn.Status)
	assert.Nil(t, txn.ProcessedAt)
	assert.Empty(t, txn.GatewayTxnID)
	assert.Equal(t, 0, gw.charges)
}

func TestSubmit_HybridBandQueuesForVerification(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := newPaymentService(repo, gateways.NewRegistry())

	txn, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(5_000)))

	require.NoError(t, err)
	assert.Equal(t, db_models.VerificationHybrid, txn.VerificationMethod)
	// Hybrid is a classification only; execution follows the manual queue.
	assert.Equal(t, db_models.PaymentStatusRequiresVerification, txn.Status)
}

func TestSubmit_UnknownMethodStillRecorded(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := newPaymentService(repo, gateways.NewRegistry())

	form := cardForm(decimal.NewFromInt(100))
	form.PaymentMethod = "crypto"

	txn, err := svc.Submit(context.Background(), form)

	var gwErr *utils.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, services.GatewayUnknown, gwErr.Gateway)

	require.NotNil(t, txn)
	assert.Equal(t, services.GatewayUnknown, txn.Gateway)
	assert.Equal(t, db_models.PaymentStatusFailed, txn.Status)

	stored, _ := repo.GetByID(context.Background(), txn.ID)
	require.NotNil(t, stored)
}

func TestSubmit_EachCallCreatesFreshTransaction(t *testing.T) {
	repo := newFakeTransactionRepo()
	gw := &stubGateway{
		name:   "card_processor",
		result: &gateways.ChargeResult{GatewayTxnID: "ref"},
	}
	svc := newPaymentService(repo, gateways.NewRegistry(gw))

	first, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(500)))
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), cardForm(decimal.NewFromInt(500)))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	txns, err := svc.ListByBooking(context.Background(), "booking-42")
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestStore_DuplicateInsertRejectedAndOriginalUntouched(t *testing.T) {
	repo := newFakeTransactionRepo()

	original := db_models.PaymentTransaction{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		BookingID: "booking-1",
		Amount:    decimal.NewFromInt(700),
		Status:    db_models.PaymentStatusPending,
	}
	require.NoError(t, repo.Insert(context.Background(), &original))

	duplicate := original
	duplicate.BookingID = "booking-other"
	err := repo.Insert(context.Background(), &duplicate)

	assert.ErrorIs(t, err, utils.ErrDuplicateTransaction)

	stored, _ := repo.GetByID(context.Background(), original.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "booking-1", stored.BookingID)
}

func TestStore_StaleUpdateRejected(t *testing.T) {
	repo := newFakeTransactionRepo()

	txn := db_models.PaymentTransaction{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Status:    db_models.PaymentStatusPending,
	}
	require.NoError(t, repo.Insert(context.Background(), &txn))

	fresh, _ := repo.GetByID(context.Background(), txn.ID)
	stale, _ := repo.GetByID(context.Background(), txn.ID)

	fresh.Status = db_models.PaymentStatusRequiresVerification
	require.NoError(t, repo.Update(context.Background(), fresh))

	stale.Status = db_models.PaymentStatusCompleted
	assert.ErrorIs(t, repo.Update(context.Background(), stale), utils.ErrVersionConflict)
}
