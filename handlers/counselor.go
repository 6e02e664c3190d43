package handlers

import (
	"net/http"

	"counselhub/middleware"
	"counselhub/models"
	"counselhub/services/auth"
	"counselhub/services/availability"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CounselorHandler exposes counselor discovery and availability endpoints.
type CounselorHandler struct {
	Auth         auth.AuthService
	Availability availability.AvailabilityService
}

// List returns every counselor's public profile.
func (h *CounselorHandler) List(c *gin.Context) {
	profiles, err := h.Auth.ListCounselors()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfile returns one counselor's public profile.
func (h *CounselorHandler) GetProfile(c *gin.Context) {
	profile, err := h.Auth.Profile(c.Param("id"), models.RoleCounselor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetAvailability replaces the calling counselor's slot list.
func (h *CounselorHandler) SetAvailability(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Availability []models.AvailabilitySlot `json:"availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	counselorID := c.GetString(middleware.CtxUserID)
	if err := h.Availability.Set(counselorID, req.Availability); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated", "availability": req.Availability})
}

// GetAvailability returns a counselor's current slot list.
func (h *CounselorHandler) GetAvailability(c *gin.Context) {
	slots, err := h.Availability.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": slots})
}
