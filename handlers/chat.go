package handlers

import (
	"net/http"

	"counselhub/middleware"
	"counselhub/services/chat"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the per-appointment message thread endpoints.
type ChatHandler struct {
	Chats chat.ChatService
}

// Thread returns the appointment's message thread.
func (h *ChatHandler) Thread(c *gin.Context) {
	thread, err := h.Chats.Thread(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// Post appends a message to the thread. The sender is always the
// authenticated caller.
func (h *ChatHandler) Post(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	callerID := c.GetString(middleware.CtxUserID)
	message, err := h.Chats.Post(c.Param("id"), callerID, req.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
