package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

// UploadResult is what a successful PDF upload produces: the stored path and
// the extracted text ready for module generation.
type UploadResult struct {
	FileName      string `json:"file_name"`
	StoredPath    string `json:"stored_path"`
	ExtractedText string `json:"extracted_text"`
}

type UploadService interface {
	SavePDF(accountID, originalName string, data []byte) (*UploadResult, error)
}

type uploadService struct {
	log        *logger.Logger
	storageDir string
}

func NewUploadService(log *logger.Logger, storageDir string) (UploadService, error) {
	serviceLog := log.With("service", "UploadService")
	if storageDir == "" {
		storageDir = filepath.Join("storage", "uploads")
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &uploadService{
		log:        serviceLog,
		storageDir: storageDir,
	}, nil
}

// SavePDF writes the file to disk under the owning account's prefix and
// extracts its text. Files with no readable text are rejected and removed.
func (us *uploadService) SavePDF(accountID, originalName string, data []byte) (*UploadResult, error) {
	name := sanitizeFileName(originalName)
	if name == "" {
		return nil, fmt.Errorf("%w: a file name is required", apperr.ErrValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", apperr.ErrValidation)
	}

	stored := filepath.Join(us.storageDir, fmt.Sprintf("%s_%s", accountID, name))
	if err := os.WriteFile(stored, data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	text, err := ExtractText(name, data)
	if err != nil {
		os.Remove(stored)
		return nil, err
	}
	us.log.Info("Upload stored", "path", stored, "chars", len(text))

	return &UploadResult{
		FileName:      name,
		StoredPath:    stored,
		ExtractedText: text,
	}, nil
}

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
