package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"counselhub/services/notes"
	"counselhub/services/storage"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler exposes the per-appointment session note endpoints.
type NoteHandler struct {
	Notes   notes.NoteService
	Storage storage.Service
}

// Upsert creates or updates the appointment's note. The request is multipart:
// an optional "text" field and an optional "file" attachment. A new file
// replaces any previous one.
func (h *NoteHandler) Upsert(c *gin.Context) {
	logger := getLogger(c)
	appointmentID := c.Param("id")
	text := c.PostForm("text")

	fileID := ""
	if fileHeader, err := c.FormFile("file"); err == nil {
		if err := storage.CheckConstraints(fileHeader.Filename, fileHeader.Size); err != nil {
			utils.RespondError(c, err)
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			logger.Error("Failed to save uploaded note file", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
			return
		}
		defer os.Remove(tempFilePath)

		storedID, err := h.Storage.Upload(c, tempFilePath, "session-notes/"+appointmentID)
		if err != nil {
			logger.Error("Failed to upload note file", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
			return
		}
		fileID = storedID
	}

	note, err := h.Notes.Upsert(appointmentID, text, fileID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Get returns the appointment's note.
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.Notes.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
