package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trippay/internal/gateways"
	"trippay/internal/models/db_models"
	"trippay/internal/models/request_models"
	"trippay/internal/services"
	"trippay/pkg/utils"
)

// fakeTransactionRepo is an in-memory store double honoring the same
// contract as the gorm repository: duplicate ids rejected, updates require
// a matching version, listings come back most-recent first.
type fakeTransactionRepo struct {
	mu   sync.Mutex
	txns map[uuid.UUID]db_models.PaymentTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txns: make(map[uuid.UUID]db_models.PaymentTransaction)}
}

func (f *fakeTransactionRepo) Insert(ctx context.Context, txn *db_models.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if _, exists := f.txns[txn.ID]; exists {
		return utils.ErrDuplicateTransaction
	}

	now := time.Now().Unix()
	if txn.CreatedAt == 0 {
		txn.CreatedAt = now
	}
	if txn.UpdatedAt == 0 {
		txn.UpdatedAt = now
	}

	f.txns[txn.ID] = *txn
	return nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, txn *db_models.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, exists := f.txns[txn.ID]
	if !exists {
		return utils.ErrTransactionNotFound
	}
	if stored.Version != txn.Version {
		return utils.ErrVersionConflict
	}

	txn.Version++
	f.txns[txn.ID] = *txn
	return nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	txn, exists := f.txns[id]
	if !exists {
		return nil, nil
	}
	copied := txn
	return &copied, nil
}

func (f *fakeTransactionRepo) ListByStatus(ctx context.Context, statuses ...db_models.PaymentStatus) ([]db_models.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.PaymentTransaction
	for _, txn := range f.txns {
		for _, status := range statuses {
			if txn.Status == status {
				out = append(out, txn)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeTransactionRepo) ListByBooking(ctx context.Context, bookingID string) ([]db_models.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.PaymentTransaction
	for _, txn := range f.txns {
		if txn.BookingID == bookingID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// seed stores a transaction directly, bypassing lifecycle rules.
func (f *fakeTransactionRepo) seed(txn db_models.PaymentTransaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txns[txn.ID] = txn
}

// fakeSettingsService serves a fixed settings value.
type fakeSettingsService struct {
	settings *db_models.PaymentSettings
}

func (f *fakeSettingsService) Load(ctx context.Context) (*db_models.PaymentSettings, error) {
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsService) Update(ctx context.Context, req request_models.UpdatePaymentSettingsRequest) (*db_models.PaymentSettings, error) {
	copied := *f.settings
	return &copied, nil
}

// fakeSettingsRepo is the persistence double for settings service tests.
type fakeSettingsRepo struct {
	stored *db_models.PaymentSettings
}

func (f *fakeSettingsRepo) Load(ctx context.Context) (*db_models.PaymentSettings, error) {
	if f.stored == nil {
		return nil, nil
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *db_models.PaymentSettings) error {
	copied := *settings
	f.stored = &copied
	return nil
}

// stubGateway answers every charge with a canned result or error.
type stubGateway struct {
	name    string
	result  *gateways.ChargeResult
	err     error
	charges int
}

func (g *stubGateway) Name() string { return g.name }

func (g *stubGateway) Charge(ctx context.Context, req gateways.ChargeRequest) (*gateways.ChargeResult, error) {
	g.charges++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func hybridSettings() *db_models.PaymentSettings {
	return services.DefaultPaymentSettings()
}
