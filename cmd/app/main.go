package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"trippay/cmd/fx/db_fx"
	"trippay/cmd/fx/gateway_fx"
	"trippay/cmd/fx/logger_fx"
	"trippay/cmd/fx/payment_fx"
	"trippay/cmd/fx/settings_fx"
	"trippay/internal/api/controllers"
	"trippay/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		gateway_fx.Module,
		settings_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminPaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, paymentController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminPaymentController) {

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("", paymentController.SubmitPayment)
	paymentsGroup.GET("/methods", paymentController.ListMethods)
	paymentsGroup.POST("/:id/receipt", paymentController.GenerateReceipt)

	r.GET("/bookings/:bookingId/payments", paymentController.ListBookingPayments)

	receiptsDir := os.Getenv("RECEIPTS_DIR")
	if receiptsDir == "" {
		receiptsDir = "receipts"
	}
	r.Static("/receipts", receiptsDir)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.Use(middleware.RoleMiddleware("admin"))
	adminGroup.GET("/payments/pending", adminController.ListPendingVerifications)
	adminGroup.POST("/payments/:id/verify", adminController.VerifyTransaction)
	adminGroup.GET("/settings/payments", adminController.GetSettings)
	adminGroup.PUT("/settings/payments", adminController.UpdateSettings)
}
