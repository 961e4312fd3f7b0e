package validate

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func instance() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New()
	})
	return structValidator
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return errs.ErrInvalidFileType
	}

	return nil
}

// ValidateCorrectOptions requires exactly one option marked correct.
func ValidateCorrectOptions(options []models.BatchOption) error {
	correct := 0
	for _, opt := range options {
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: got %d", errs.ErrCorrectOptionCount, correct)
	}

	return nil
}

func ValidateItem(item models.UploadBatchItem) error {
	if err := instance().Struct(item); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidBatch, err)
	}

	if err := ValidateCorrectOptions(item.Options); err != nil {
		return err
	}

	if item.Image != nil {
		if err := ValidateFileExtension(item.Image.Filename); err != nil {
			return fmt.Errorf("question image %q: %w", item.Image.Filename, err)
		}
	}

	for j, opt := range item.Options {
		if opt.Image == nil {
			continue
		}
		if err := ValidateFileExtension(opt.Image.Filename); err != nil {
			return fmt.Errorf("option %d image %q: %w", j, opt.Image.Filename, err)
		}
	}

	return nil
}

// ValidateBatch checks every item before a multipart body is built.
func ValidateBatch(items []models.UploadBatchItem) error {
	if len(items) == 0 {
		return errs.ErrEmptyBatch
	}

	for i, item := range items {
		if err := ValidateItem(item); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}

	return nil
}

// ValidateQuestion checks a question received by the stub backend.
func ValidateQuestion(q models.Question) error {
	if strings.TrimSpace(q.Statement) == "" {
		return fmt.Errorf("%w: statement is required", errs.ErrInvalidBatch)
	}
	if q.AreaID <= 0 {
		return fmt.Errorf("%w: id_area is required", errs.ErrInvalidBatch)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: at least 2 options required, got %d", errs.ErrInvalidBatch, len(q.Options))
	}

	correct := 0
	for _, opt := range q.Options {
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: got %d", errs.ErrCorrectOptionCount, correct)
	}

	return nil
}
