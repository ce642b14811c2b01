package usecase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/cat-tracker/internal/pkg/errors"
)

// Extensions carried over from the original filename; anything else is
// forced to the default rather than rejected.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const defaultExtension = ".jpg"

// UploadUseCase writes uploaded images to the local upload directory under
// freshly generated names, so concurrent uploads can never collide.
type UploadUseCase struct {
	dir    string
	logger *zap.Logger
}

func NewUploadUseCase(dir string, logger *zap.Logger) (*UploadUseCase, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &UploadUseCase{
		dir:    dir,
		logger: logger,
	}, nil
}

// Store validates the declared content type, writes the bytes verbatim and
// returns the path under which the file is served. Nothing touches disk for
// a rejected upload.
func (uc *UploadUseCase) Store(filename, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		uc.logger.Warn("Rejected non-image upload",
			zap.String("content_type", contentType),
			zap.String("filename", filename),
		)
		return "", apperrors.ErrInvalidUploadType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		ext = defaultExtension
	}

	name := uuid.New().String() + ext
	path := filepath.Join(uc.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	uc.logger.Info("Image stored",
		zap.String("file", name),
		zap.Int64("bytes", written),
	)

	return "/uploads/" + name, nil
}
