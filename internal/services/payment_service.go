package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trippay/internal/gateways"
	"trippay/internal/models/db_models"
	"trippay/internal/models/request_models"
	"trippay/internal/repositories"
	"trippay/pkg/utils"
)

type PaymentServiceInterface interface {
	Submit(ctx context.Context, form request_models.SubmitPaymentRequest) (*db_models.PaymentTransaction, error)
	ListByBooking(ctx context.Context, bookingID string) ([]db_models.PaymentTransaction, error)
}

type PaymentService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	settings        SettingsServiceInterface
	registry        *gateways.Registry
	locks           *utils.KeyedMutex
	logger          *zap.Logger
}

func NewPaymentService(
	transactionRepo repositories.TransactionRepositoryInterface,
	settings SettingsServiceInterface,
	registry *gateways.Registry,
	locks *utils.KeyedMutex,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		transactionRepo: transactionRepo,
		settings:        settings,
		registry:        registry,
		locks:           locks,
		logger:          logger,
	}
}

// Submit drives a payment form through the full lifecycle: a pending record
// is created first, the amount is classified once, and the record is then
// moved either through the automatic-completion path or onto the manual
// verification queue. The call returns only after the transaction is durably
// in a terminal automatic state or in requires_verification.
//
// Submit is not idempotent: every call creates a fresh transaction id.
// De-duplication belongs to the booking layer.
func (s *PaymentService) Submit(ctx context.Context, form request_models.SubmitPaymentRequest) (*db_models.PaymentTransaction, error) {

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	method := db_models.PaymentType(form.PaymentMethod)
	route := RouteVerification(form.Amount, settings)

	txn := &db_models.PaymentTransaction{
		BaseModel:          db_models.BaseModel{ID: uuid.New()},
		BookingID:          form.BookingID,
		UserID:             form.UserID,
		Amount:             form.Amount,
		Currency:           form.Currency,
		PaymentMethod:      method,
		Gateway:            GatewayForMethod(method),
		Status:             db_models.PaymentStatusPending,
		VerificationMethod: route,
	}
	txn.SetMetadata(form.Metadata)

	if err := s.transactionRepo.Insert(ctx, txn); err != nil {
		s.logger.Error("failed to insert payment transaction",
			zap.String("booking_id", form.BookingID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment transaction created",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("booking_id", txn.BookingID),
		zap.String("amount", txn.Amount.String()),
		zap.String("gateway", txn.Gateway),
		zap.String("verification_method", string(route)))

	unlock := s.locks.Lock(txn.ID.String())
	defer unlock()

	if route == db_models.VerificationAutomatic {
		return s.runAutomaticPath(ctx, txn.ID)
	}

	// Manual and hybrid both queue for an administrator; no gateway call yet.
	return s.queueForVerification(ctx, txn.ID)
}

func (s *PaymentService) runAutomaticPath(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error) {

	txn, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	gw, ok := s.registry.Resolve(txn.Gateway)
	if !ok {
		gwErr := utils.NewGatewayError(txn.Gateway, "no processor registered", nil)
		failed, failErr := s.markFailed(ctx, txn, gwErr)
		if failErr != nil {
			return nil, failErr
		}
		return failed, gwErr
	}

	result, chargeErr := gw.Charge(ctx, gateways.ChargeRequest{
		TransactionID: txn.ID.String(),
		BookingID:     txn.BookingID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Method:        txn.PaymentMethod,
		Metadata:      txn.MetadataMap(),
	})
	if chargeErr != nil {
		s.logger.Warn("gateway charge failed",
			zap.String("transaction_id", txn.ID.String()),
			zap.String("gateway", txn.Gateway),
			zap.Error(chargeErr))

		gwErr, okErr := chargeErr.(*utils.GatewayError)
		if !okErr {
			gwErr = utils.NewGatewayError(txn.Gateway, "charge failed", chargeErr)
		}
		failed, failErr := s.markFailed(ctx, txn, gwErr)
		if failErr != nil {
			return nil, failErr
		}
		return failed, gwErr
	}

	now := time.Now().Unix()
	txn.Status = db_models.PaymentStatusCompleted
	txn.GatewayTxnID = result.GatewayTxnID
	txn.ProcessedAt = &now
	txn.VerifiedAt = &now
	txn.UpdatedAt = now

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("payment completed automatically",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("gateway_txn_id", txn.GatewayTxnID))

	return txn, nil
}

func (s *PaymentService) queueForVerification(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error) {

	txn, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	txn.Status = db_models.PaymentStatusRequiresVerification
	txn.UpdatedAt = time.Now().Unix()

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("payment queued for manual verification",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("verification_method", string(txn.VerificationMethod)))

	return txn, nil
}

// markFailed moves the record to its failed terminal state, keeping the
// gateway's reason in metadata for audit. The gateway error itself is
// returned to the caller by the path that detected it.
func (s *PaymentService) markFailed(ctx context.Context, txn *db_models.PaymentTransaction, gwErr *utils.GatewayError) (*db_models.PaymentTransaction, error) {

	now := time.Now().Unix()
	meta := txn.MetadataMap()
	meta["failure_reason"] = gwErr.Reason
	txn.SetMetadata(meta)

	txn.Status = db_models.PaymentStatusFailed
	txn.ProcessedAt = &now
	txn.UpdatedAt = now

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// reload re-reads the full record before a transition; transitions never
// write partial field updates over a stale copy.
func (s *PaymentService) reload(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error) {
	txn, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to reload transaction", zap.String("transaction_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *PaymentService) ListByBooking(ctx context.Context, bookingID string) ([]db_models.PaymentTransaction, error) {
	txns, err := s.transactionRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to list booking payments", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}
