// Package media implements device media access for photo attachments.
package media

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/config"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
)

// filesystemPicker resolves local file URIs into pending photos. Access is
// scoped to one allowed directory, standing in for the device media
// permission: every pick re-checks access, and a denial short-circuits with
// ErrPermissionDenied and no side effects.
type filesystemPicker struct {
	allowedDir string
}

// NewFilesystemPicker is the constructor for filesystemPicker. An empty
// allowed directory denies every pick.
func NewFilesystemPicker(cfg *config.Config) service.MediaPicker {
	return &filesystemPicker{allowedDir: cfg.Media.AllowedDir}
}

// Pick validates access to uri and returns a pending photo with the
// filename and inferred MIME type filled in.
func (p *filesystemPicker) Pick(ctx context.Context, uri string) (*entity.PendingPhoto, error) {
	if err := p.checkPermission(uri); err != nil {
		return nil, err
	}

	file, err := os.Open(uri)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, errors.Wrap(domainerrors.ErrPermissionDenied, uri)
		}

		return nil, errors.Wrap(err, "open media")
	}
	file.Close()

	filename := filepath.Base(uri)

	return &entity.PendingPhoto{
		URI:      uri,
		MimeType: entity.InferMimeType(filename),
		Filename: filename,
	}, nil
}

// checkPermission re-evaluates the media scope on every attempt. Permission
// is never cached between picks.
func (p *filesystemPicker) checkPermission(uri string) error {
	if p.allowedDir == "" {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "media access not granted")
	}

	absDir, err := filepath.Abs(p.allowedDir)
	if err != nil {
		return errors.Wrap(err, "resolve media directory")
	}
	absURI, err := filepath.Abs(uri)
	if err != nil {
		return errors.Wrap(err, "resolve media path")
	}

	rel, err := filepath.Rel(absDir, absURI)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.Wrap(domainerrors.ErrPermissionDenied, uri)
	}

	return nil
}
