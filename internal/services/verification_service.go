package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trippay/internal/models/db_models"
	"trippay/internal/repositories"
	"trippay/pkg/utils"
)

type VerificationServiceInterface interface {
	Verify(ctx context.Context, transactionID uuid.UUID, adminID string, approved bool, notes *string) (*db_models.PaymentTransaction, error)
	ListPending(ctx context.Context) ([]db_models.PaymentTransaction, error)
}

// VerificationService resolves queued transactions. It is the only path out
// of requires_verification; there is no timeout or automatic expiry.
type VerificationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	locks           *utils.KeyedMutex
	logger          *zap.Logger
}

func NewVerificationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	locks *utils.KeyedMutex,
	logger *zap.Logger,
) VerificationServiceInterface {
	return &VerificationService{
		transactionRepo: transactionRepo,
		locks:           locks,
		logger:          logger,
	}
}

// Verify moves a queued transaction to verified (approved) or declined,
// recording the operator identity and notes. A transaction in any other
// state fails with ErrInvalidTransactionState and is left untouched.
func (s *VerificationService) Verify(
	ctx context.Context,
	transactionID uuid.UUID,
	adminID string,
	approved bool,
	notes *string,
) (*db_models.PaymentTransaction, error) {

	unlock := s.locks.Lock(transactionID.String())
	defer unlock()

	txn, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		s.logger.Error("failed to load transaction for verification",
			zap.String("transaction_id", transactionID.String()),
			zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	if txn.Status != db_models.PaymentStatusRequiresVerification {
		return nil, utils.ErrInvalidTransactionState
	}

	now := time.Now().Unix()
	if approved {
		txn.Status = db_models.PaymentStatusVerified
	} else {
		txn.Status = db_models.PaymentStatusDeclined
	}
	txn.VerifiedAt = &now
	txn.VerifiedBy = &adminID
	txn.VerificationNotes = notes
	txn.UpdatedAt = now

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		s.logger.Error("failed to persist verification decision",
			zap.String("transaction_id", transactionID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("transaction verification resolved",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("verified_by", adminID),
		zap.Bool("approved", approved))

	return txn, nil
}

// ListPending returns the admin queue: pending and requires_verification
// transactions, most recent first.
func (s *VerificationService) ListPending(ctx context.Context) ([]db_models.PaymentTransaction, error) {
	txns, err := s.transactionRepo.ListByStatus(ctx,
		db_models.PaymentStatusPending,
		db_models.PaymentStatusRequiresVerification,
	)
	if err != nil {
		s.logger.Error("failed to list pending verifications", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}
