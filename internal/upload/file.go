package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/supchaser/quiz_client/internal/app/models"
)

// FromFile reads a picked image from disk, keeping its original name.
func FromFile(path string) (*models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", path, err)
	}

	return &models.Attachment{
		Filename: filepath.Base(path),
		Data:     data,
	}, nil
}
