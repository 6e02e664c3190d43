package storage

import (
	"context"
	"path/filepath"
	"strings"

	"counselhub/utils"
)

// MaxUploadBytes caps uploaded attachments at 5 MB.
const MaxUploadBytes = 5 * 1024 * 1024

// allowedExtensions is the attachment allow-list.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".docx": true,
}

// Service stores uploaded files and deletes them by their stored identifier.
type Service interface {
	// Upload stores the file at localFilePath under destFolder and returns
	// the permanent identifier.
	Upload(ctx context.Context, localFilePath, destFolder string) (string, error)
	// Delete removes a stored file by its identifier.
	Delete(ctx context.Context, storedID string) error
}

// CheckConstraints validates an upload's name and size against the
// extension allow-list and the size cap, before anything touches storage.
func CheckConstraints(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return utils.NewAppError(utils.CodeValidation, "file type not allowed; use jpg, jpeg, png, pdf or docx")
	}
	if size > MaxUploadBytes {
		return utils.NewAppError(utils.CodeValidation, "file exceeds the 5 MB size limit")
	}
	return nil
}
