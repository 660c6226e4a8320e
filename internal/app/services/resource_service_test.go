package services

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

func TestValidateResourceFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  string
	}{
		{name: "valid pdf", filename: "notes.pdf", size: 1024},
		{name: "uppercase extension", filename: "NOTES.PDF", size: 1024},
		{name: "exactly at limit", filename: "big.pdf", size: maxResourceFileSize},
		{name: "over limit", filename: "huge.pdf", size: maxResourceFileSize + 1, wantErr: "file exceeds the 10 MiB limit"},
		{name: "wrong extension", filename: "notes.docx", size: 1024, wantErr: "only PDF files are accepted"},
		{name: "no extension", filename: "notes", size: 1024, wantErr: "only PDF files are accepted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResourceFile(&multipart.FileHeader{Filename: tt.filename, Size: tt.size})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
