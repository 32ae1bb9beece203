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

type AdminPaymentController struct {
	verificationService services.VerificationServiceInterface
	settingsService     services.SettingsServiceInterface
}

func NewAdminPaymentController(
	verificationService services.VerificationServiceInterface,
	settingsService services.SettingsServiceInterface,
) *AdminPaymentController {
	return &AdminPaymentController{
		verificationService: verificationService,
		settingsService:     settingsService,
	}
}

// ListPendingVerifications godoc
// @Summary List transactions awaiting processing or manual verification
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/payments/pending [get]
func (a *AdminPaymentController) ListPendingVerifications(c *gin.Context) {

	txns, err := a.verificationService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPaymentTransactionResponses(txns), "Pending verifications")
}

// VerifyTransaction godoc
// @Summary Approve or reject a queued transaction
// @Description Moves a requires_verification transaction to verified or declined
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request_models.VerifyPaymentRequest true "Verification Decision"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/payments/{id}/verify [post]
func (a *AdminPaymentController) VerifyTransaction(c *gin.Context) {

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	adminID := c.GetString("user_id")
	if adminID == "" {
		utils.RespondError(c, http.StatusBadRequest, "operator identity missing")
		return
	}

	txn, err := a.verificationService.Verify(c.Request.Context(), id, adminID, request.Approved, request.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPaymentTransactionResponse(txn), "Verification recorded")
}

// GetSettings godoc
// @Summary Get the current payment settings
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/settings/payments [get]
func (a *AdminPaymentController) GetSettings(c *gin.Context) {

	settings, err := a.settingsService.Load(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Payment settings")
}

// UpdateSettings godoc
// @Summary Update payment settings
// @Description Shallow-merges the supplied fields into the current settings
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePaymentSettingsRequest true "Settings Update"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/settings/payments [put]
func (a *AdminPaymentController) UpdateSettings(c *gin.Context) {

	var request request_models.UpdatePaymentSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	settings, err := a.settingsService.Update(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Payment settings updated")
}
