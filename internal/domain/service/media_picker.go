package service

import (
	"context"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

// MediaPicker abstracts access to device media. Picking requires a scoped
// media permission that must be re-checked on every attempt; a denial
// short-circuits without side effects.
type MediaPicker interface {
	// Pick resolves a local media reference into a pending photo ready for
	// upload. Returns errors.ErrPermissionDenied when access is refused.
	Pick(ctx context.Context, uri string) (*entity.PendingPhoto, error)
}
