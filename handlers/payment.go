package handlers

import (
	"net/http"

	"counselhub/middleware"
	"counselhub/services/payment"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes checkout session endpoints.
type PaymentHandler struct {
	Payments payment.PaymentService
}

// CreateCheckoutSession creates a Stripe checkout session for the calling
// client and returns its ID and redirect URL.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		AppointmentID string `json:"appointmentId"`
		Amount        int64  `json:"amount"`
		Currency      string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid checkout payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	clientID := c.GetString(middleware.CtxUserID)
	sess, err := h.Payments.CreateCheckoutSession(clientID, req.AppointmentID, req.Amount, req.Currency)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// ListMine returns the calling client's payment records.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	clientID := c.GetString(middleware.CtxUserID)
	payments, err := h.Payments.ListForClient(clientID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
