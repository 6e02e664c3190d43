package handlers

import (
	"net/http"
	"strings"

	"counselhub/services/notification"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommunicationHandler exposes email delivery and video call link endpoints.
type CommunicationHandler struct {
	Email            notification.EmailSender
	VideoCallBaseURL string
}

// SendEmail delivers a transactional email to a single recipient.
func (h *CommunicationHandler) SendEmail(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ToEmail string `json:"toEmail"`
		ToName  string `json:"toName"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid email payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.ToEmail == "" || req.Subject == "" || req.Body == "" {
		utils.JSONError(c, http.StatusBadRequest, "toEmail, subject and body are required", "")
		return
	}

	if err := h.Email.Send(req.ToEmail, req.ToName, req.Subject, req.Body); err != nil {
		logger.Error("Failed to send email", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to send email", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email sent"})
}

// VideoCallLink returns the meeting room URL for an appointment. Rooms are
// deterministic per appointment, so both parties land in the same one.
func (h *CommunicationHandler) VideoCallLink(c *gin.Context) {
	appointmentID := c.Param("id")
	base := strings.TrimRight(h.VideoCallBaseURL, "/")
	c.JSON(http.StatusOK, gin.H{"url": base + "/appointment-" + appointmentID})
}
