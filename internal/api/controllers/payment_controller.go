package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trippay/internal/models/request_models"
	"trippay/internal/models/response_models"
	"trippay/internal/services"
	"trippay/pkg/utils"
)

type PaymentController struct {
	paymentService  services.PaymentServiceInterface
	receiptService  services.ReceiptServiceInterface
	settingsService services.SettingsServiceInterface
}

func NewPaymentController(
	paymentService services.PaymentServiceInterface,
	receiptService services.ReceiptServiceInterface,
	settingsService services.SettingsServiceInterface,
) *PaymentController {
	return &PaymentController{
		paymentService:  paymentService,
		receiptService:  receiptService,
		settingsService: settingsService,
	}
}

// SubmitPayment godoc
// @Summary Submit a payment for a booking
// @Description Creates a payment transaction and runs it through the automatic or manual verification path
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPaymentRequest true "Payment Form"
// @Success 200 {object} utils.APIResponse
// @Router /payments [post]
func (p *PaymentController) SubmitPayment(c *gin.Context) {

	var request request_models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	txn, err := p.paymentService.Submit(c.Request.Context(), request)
	if err != nil {
		// A gateway decline still produced a recorded transaction; surface
		// both the failure and the record.
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPaymentTransactionResponse(txn), "Payment submitted")
}

// ListMethods godoc
// @Summary List available payment methods
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/methods [get]
func (p *PaymentController) ListMethods(c *gin.Context) {

	settings, err := p.settingsService.Load(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, services.ListMethods(settings), "Payment methods")
}

// ListBookingPayments godoc
// @Summary List payment transactions for a booking
// @Tags Payments
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/{bookingId}/payments [get]
func (p *PaymentController) ListBookingPayments(c *gin.Context) {

	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "bookingId is required")
		return
	}

	txns, err := p.paymentService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPaymentTransactionResponses(txns), "Booking payments")
}

// GenerateReceipt godoc
// @Summary Generate (or regenerate) the receipt for a transaction
// @Tags Payments
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Router /payments/{id}/receipt [post]
func (p *PaymentController) GenerateReceipt(c *gin.Context) {

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	receipt, err := p.receiptService.Generate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, receipt, "Receipt generated")
}
