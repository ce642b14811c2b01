package usecase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/cat-tracker/internal/pkg/errors"
	"github.com/cat-tracker/internal/usecase"
)

func TestUploadUseCase_Store(t *testing.T) {
	logger := zap.NewNop()

	t.Run("rejects non-image content types without writing", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := usecase.NewUploadUseCase(dir, logger)
		require.NoError(t, err)

		url, err := uc.Store("notes.txt", "text/plain", strings.NewReader("hello"))
		assert.Empty(t, url)
		assert.ErrorIs(t, err, apperrors.ErrInvalidUploadType)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("stores an allowed extension verbatim", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := usecase.NewUploadUseCase(dir, logger)
		require.NoError(t, err)

		url, err := uc.Store("cat.PNG", "image/png", strings.NewReader("pngdata"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
		require.NoError(t, err)
		assert.Equal(t, "pngdata", string(data))
	})

	t.Run("forces disallowed extensions to .jpg instead of rejecting", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := usecase.NewUploadUseCase(dir, logger)
		require.NoError(t, err)

		url, err := uc.Store("x.bmp", "image/png", strings.NewReader("data"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".jpg"))
	})

	t.Run("generated filenames never collide", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := usecase.NewUploadUseCase(dir, logger)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			url, err := uc.Store("cat.jpg", "image/jpeg", strings.NewReader("x"))
			require.NoError(t, err)
			assert.False(t, seen[url], "duplicate upload path %s", url)
			seen[url] = true
		}
	})

	t.Run("creates the upload directory when absent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		_, err := usecase.NewUploadUseCase(dir, logger)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
