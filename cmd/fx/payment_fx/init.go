package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trippay/internal/api/controllers"
	"trippay/internal/gateways"
	"trippay/internal/repositories"
	"trippay/internal/services"
	"trippay/pkg/utils"
)

var Module = fx.Provide(
	provideTransactionRepository,
	provideTransactionLocks,
	providePaymentService,
	provideVerificationService,
	provideReceiptService,
	providePaymentController,
	provideAdminPaymentController,
)

func provideTransactionRepository(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionLocks() *utils.KeyedMutex {
	return utils.NewKeyedMutex()
}

func providePaymentService(
	transactionRepo repositories.TransactionRepositoryInterface,
	settingsService services.SettingsServiceInterface,
	registry *gateways.Registry,
	locks *utils.KeyedMutex,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	return services.NewPaymentService(transactionRepo, settingsService, registry, locks, logger)
}

func provideVerificationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	locks *utils.KeyedMutex,
	logger *zap.Logger,
) services.VerificationServiceInterface {
	return services.NewVerificationService(transactionRepo, locks, logger)
}

func provideReceiptService(
	transactionRepo repositories.TransactionRepositoryInterface,
	settingsService services.SettingsServiceInterface,
	locks *utils.KeyedMutex,
	logger *zap.Logger,
) services.ReceiptServiceInterface {
	instance, err := services.NewReceiptService(transactionRepo, settingsService, locks, services.ReceiptConfig{
		Dir:            os.Getenv("RECEIPTS_DIR"),
		PublicBasePath: os.Getenv("RECEIPTS_BASE_PATH"),
	}, logger)
	if err != nil {
		log.Printf("Error initializing ReceiptService: %v", err)
	}

	return instance
}

func providePaymentController(
	paymentService services.PaymentServiceInterface,
	receiptService services.ReceiptServiceInterface,
	settingsService services.SettingsServiceInterface,
) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService, receiptService, settingsService)
}

func provideAdminPaymentController(
	verificationService services.VerificationServiceInterface,
	settingsService services.SettingsServiceInterface,
) *controllers.AdminPaymentController {
	return controllers.NewAdminPaymentController(verificationService, settingsService)
}
