package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetler74/linkuupapp-sub002/config"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
)

func createTestPicker(t *testing.T) (*config.Config, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Media.AllowedDir = dir

	return cfg, dir
}

func TestFilesystemPicker_Pick(t *testing.T) {
	cfg, dir := createTestPicker(t)
	picker := NewFilesystemPicker(cfg)

	path := filepath.Join(dir, "portrait.PNG")
	require.NoError(t, os.WriteFile(path, []byte("fake image"), 0o600))

	photo, err := picker.Pick(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, photo.URI)
	assert.Equal(t, "portrait.PNG", photo.Filename)
	assert.Equal(t, "image/png", photo.MimeType)
}

func TestFilesystemPicker_PickJPEGDefault(t *testing.T) {
	cfg, dir := createTestPicker(t)
	picker := NewFilesystemPicker(cfg)

	path := filepath.Join(dir, "portrait.jpeg")
	require.NoError(t, os.WriteFile(path, []byte("fake image"), 0o600))

	photo, err := picker.Pick(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MimeType)
}

func TestFilesystemPicker_DeniesOutsideScope(t *testing.T) {
	cfg, _ := createTestPicker(t)
	picker := NewFilesystemPicker(cfg)

	outside := filepath.Join(t.TempDir(), "elsewhere.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("fake image"), 0o600))

	_, err := picker.Pick(context.Background(), outside)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestFilesystemPicker_DeniesWithoutGrant(t *testing.T) {
	picker := NewFilesystemPicker(&config.Config{})

	_, err := picker.Pick(context.Background(), "/anywhere/photo.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestFilesystemPicker_RechecksPermissionPerPick(t *testing.T) {
	cfg, dir := createTestPicker(t)

	path := filepath.Join(dir, "portrait.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake image"), 0o600))

	granted := NewFilesystemPicker(cfg)
	_, err := granted.Pick(context.Background(), path)
	require.NoError(t, err)

	// A picker built after the grant went away denies the same path.
	revoked := NewFilesystemPicker(&config.Config{})
	_, err = revoked.Pick(context.Background(), path)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestFilesystemPicker_MissingFile(t *testing.T) {
	cfg, dir := createTestPicker(t)
	picker := NewFilesystemPicker(cfg)

	_, err := picker.Pick(context.Background(), filepath.Join(dir, "nope.jpg"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}
