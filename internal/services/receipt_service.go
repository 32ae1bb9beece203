package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trippay/internal/models/response_models"
	"trippay/internal/repositories"
	"trippay/pkg/utils"
)

type ReceiptConfig struct {
	// Dir is where rendered receipt documents are written.
	Dir string
	// PublicBasePath is the URL prefix the documents are served under,
	// e.g. "/receipts".
	PublicBasePath string
}

type ReceiptServiceInterface interface {
	Generate(ctx context.Context, transactionID uuid.UUID) (*response_models.ReceiptResponse, error)
}

type ReceiptService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	settings        SettingsServiceInterface
	locks           *utils.KeyedMutex
	cfg             ReceiptConfig
	tmpl            *template.Template
	logger          *zap.Logger
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Receipt {{.TransactionID}}</title></head>
<body>
  <h1>{{.CompanyName}}</h1>
  <p>{{.CompanyAddress}}<br>{{.CompanyContact}}</p>
  <hr>
  <h2>Payment Receipt</h2>
  <table>
    <tr><td>Receipt for transaction</td><td>{{.TransactionID}}</td></tr>
    <tr><td>Date</td><td>{{.Date}}</td></tr>
    <tr><td>Booking</td><td>{{.BookingID}}</td></tr>
    <tr><td>Payment method</td><td>{{.PaymentMethod}}</td></tr>
    <tr><td>Status</td><td>{{.Status}}</td></tr>
    <tr><td>Amount</td><td>{{.Amount}} {{.Currency}}</td></tr>
  </table>
  <p>{{.Footer}}</p>
</body>
</html>
`

type receiptData struct {
	TransactionID  string
	Date           string
	BookingID      string
	PaymentMethod  string
	Status         string
	Amount         string
	Currency       string
	CompanyName    string
	CompanyAddress string
	CompanyContact string
	Footer         string
}

func NewReceiptService(
	transactionRepo repositories.TransactionRepositoryInterface,
	settings SettingsServiceInterface,
	locks *utils.KeyedMutex,
	cfg ReceiptConfig,
	logger *zap.Logger,
) (ReceiptServiceInterface, error) {
	if cfg.Dir == "" {
		cfg.Dir = "receipts"
	}
	if cfg.PublicBasePath == "" {
		cfg.PublicBasePath = "/receipts"
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}

	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse receipt template: %w", err)
	}

	return &ReceiptService{
		transactionRepo: transactionRepo,
		settings:        settings,
		locks:           locks,
		cfg:             cfg,
		tmpl:            tmpl,
		logger:          logger,
	}, nil
}

// Generate renders a receipt from the transaction snapshot and the company
// profile, writes the document, and stores its reference on the record.
// Calling it again regenerates and overwrites the reference; nothing else
// about the transaction changes.
func (s *ReceiptService) Generate(ctx context.Context, transactionID uuid.UUID) (*response_models.ReceiptResponse, error) {

	unlock := s.locks.Lock(transactionID.String())
	defer unlock()

	txn, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		s.logger.Error("failed to load transaction for receipt",
			zap.String("transaction_id", transactionID.String()),
			zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	data := receiptData{
		TransactionID:  txn.ID.String(),
		Date:           utils.FormatUnixSeconds(txn.CreatedAt),
		BookingID:      txn.BookingID,
		PaymentMethod:  string(txn.PaymentMethod),
		Status:         string(txn.Status),
		Amount:         txn.Amount.String(),
		Currency:       txn.Currency,
		CompanyName:    settings.CompanyName,
		CompanyAddress: settings.CompanyAddress,
		CompanyContact: settings.CompanyContact,
		Footer:         settings.ReceiptFooter,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	filename := txn.ID.String() + ".html"
	if err := os.WriteFile(filepath.Join(s.cfg.Dir, filename), buf.Bytes(), 0o644); err != nil {
		s.logger.Error("failed to write receipt document",
			zap.String("transaction_id", txn.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("write receipt: %w", err)
	}

	receiptURL := s.cfg.PublicBasePath + "/" + filename
	txn.ReceiptURL = &receiptURL
	txn.UpdatedAt = utils.NowUnixSeconds()

	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("receipt generated",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("receipt_url", receiptURL))

	return &response_models.ReceiptResponse{
		TransactionID: txn.ID.String(),
		ReceiptURL:    receiptURL,
		GeneratedAt:   txn.UpdatedAt,
	}, nil
}
