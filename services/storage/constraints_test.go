package storage

import (
	"errors"
	"testing"

	"counselhub/utils"
)

func TestCheckConstraints(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		ok       bool
	}{
		{"jpg", "photo.jpg", 1024, true},
		{"jpeg", "photo.jpeg", 1024, true},
		{"png", "scan.png", 1024, true},
		{"pdf", "report.pdf", 1024, true},
		{"docx", "notes.docx", 1024, true},
		{"uppercase extension", "REPORT.PDF", 1024, true},
		{"at size limit", "report.pdf", MaxUploadBytes, true},
		{"over size limit", "report.pdf", MaxUploadBytes + 1, false},
		{"executable", "malware.exe", 1024, false},
		{"no extension", "README", 1024, false},
		{"doc not docx", "old.doc", 1024, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckConstraints(tc.filename, tc.size)
			if tc.ok && err != nil {
				t.Fatalf("want accepted, got %v", err)
			}
			if !tc.ok {
				var appErr *utils.AppError
				if err == nil {
					t.Fatal("want rejection, got nil")
				}
				if !errors.As(err, &appErr) || appErr.Code != utils.CodeValidation {
					t.Fatalf("want validation error, got %v", err)
				}
			}
		})
	}
}
