package handlers

import (
	"net/http"

	"counselhub/middleware"
	"counselhub/models"
	"counselhub/services/scheduling"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking and appointment management endpoints.
type AppointmentHandler struct {
	Scheduler scheduling.SchedulingService
}

// Schedule books an appointment for the calling client.
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	logger := getLogger(c)

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	// The booking is always made on behalf of the authenticated client.
	req.ClientID = c.GetString(middleware.CtxUserID)

	appointment, err := h.Scheduler.Schedule(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// ListMine returns the caller's appointments, resolved by role.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	id := c.GetString(middleware.CtxUserID)
	role := models.Role(c.GetString(middleware.CtxRole))

	var (
		appointments []models.Appointment
		err          error
	)
	if role == models.RoleCounselor {
		appointments, err = h.Scheduler.ListForCounselor(id)
	} else {
		appointments, err = h.Scheduler.ListForClient(id)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Get returns one appointment. Only its client or counselor may view it.
func (h *AppointmentHandler) Get(c *gin.Context) {
	appointment, err := h.Scheduler.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !h.callerIsParty(c, appointment) {
		utils.JSONError(c, http.StatusForbidden, "you are not a participant of this appointment", "")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateStatus moves an appointment to a new status. Only a participant may
// change it.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appointmentID := c.Param("id")
	appointment, err := h.Scheduler.Get(appointmentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !h.callerIsParty(c, appointment) {
		utils.JSONError(c, http.StatusForbidden, "you are not a participant of this appointment", "")
		return
	}

	if err := h.Scheduler.UpdateStatus(appointmentID, req.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": req.Status})
}

func (h *AppointmentHandler) callerIsParty(c *gin.Context, appointment *models.Appointment) bool {
	callerID := c.GetString(middleware.CtxUserID)
	return callerID == appointment.ClientID || callerID == appointment.CounselorID
}
