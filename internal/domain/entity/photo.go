package entity

import "strings"

// PhotoStateKind enumerates the four mutually exclusive photo states of a
// form: no photo at all, an existing server-side photo kept as is, an
// existing photo marked for removal, or a freshly picked photo pending
// upload.
type PhotoStateKind int

const (
	PhotoNone PhotoStateKind = iota
	PhotoExisting
	PhotoMarkedForRemoval
	PhotoPending
)

// PendingPhoto is a transient local reference to a newly chosen image. It is
// resolved into a server-side photo resource only at submission time.
type PendingPhoto struct {
	URI      string
	MimeType string
	Filename string
}

// InferMimeType maps a filename to the MIME type used for upload. Only PNG is
// distinguished; everything else is treated as JPEG.
func InferMimeType(filename string) string {
	if strings.ToLower(filenameExt(filename)) == ".png" {
		return "image/png"
	}

	return "image/jpeg"
}

func filenameExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}

	return filename[idx:]
}

// PhotoState tracks the photo attachment of a form. Exactly one of the four
// kinds holds at any time; the transition methods preserve that invariant.
type PhotoState struct {
	kind        PhotoStateKind
	existingURL string
	pending     *PendingPhoto
}

// NewPhotoState initializes the state from the entity loaded into the form.
// An empty existing URL means there is no photo.
func NewPhotoState(existingURL string) PhotoState {
	if existingURL == "" {
		return PhotoState{kind: PhotoNone}
	}

	return PhotoState{kind: PhotoExisting, existingURL: existingURL}
}

// Kind returns the current state.
func (p *PhotoState) Kind() PhotoStateKind {
	return p.kind
}

// ExistingURL returns the server-side photo URL loaded into the form, also
// while the photo is marked for removal or shadowed by a pending pick.
func (p *PhotoState) ExistingURL() string {
	return p.existingURL
}

// Pending returns the locally picked photo, or nil when no pick is pending.
func (p *PhotoState) Pending() *PendingPhoto {
	return p.pending
}

// Attach records a freshly picked photo, replacing any earlier pick or
// removal mark.
func (p *PhotoState) Attach(photo PendingPhoto) {
	if photo.MimeType == "" {
		photo.MimeType = InferMimeType(photo.Filename)
	}
	p.kind = PhotoPending
	p.pending = &photo
}

// MarkRemoved flags the existing photo for server-side deletion. Without an
// existing photo it simply clears any pending pick.
func (p *PhotoState) MarkRemoved() {
	p.pending = nil
	if p.existingURL == "" {
		p.kind = PhotoNone

		return
	}
	p.kind = PhotoMarkedForRemoval
}

// KeepExisting reverts a removal mark or a pending pick back to the loaded
// photo, or to no photo when none was loaded.
func (p *PhotoState) KeepExisting() {
	p.pending = nil
	if p.existingURL == "" {
		p.kind = PhotoNone

		return
	}
	p.kind = PhotoExisting
}
