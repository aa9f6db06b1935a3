// Package images turns a form's image slot into exactly one persistable URL.
// A slot is fed by one of three sources: a locally staged file that gets
// uploaded at submit time, a pasted URL that must be explicitly confirmed, or
// a URL already stored on the entity being edited. File and URL staging are
// mutually exclusive; staging one discards the other.
package images

import (
	"context"
	"fmt"
	"io"
	"strings"

	"baanthai-construction-api/internal/models"
)

// Uploader is the blob-store dependency of the resolver. Satisfied by
// *s3.Uploader.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, contentType string) (string, error)
}

type slotState int

const (
	stateEmpty slotState = iota
	stateFileStaged
	stateURLStaged
	stateURLConfirmed
	stateResolved
)

// Slot is the per-image state machine. The zero value is an empty slot;
// editing an existing entity starts from ResolvedSlot instead.
type Slot struct {
	state       slotState
	file        io.Reader
	contentType string
	url         string
}

// ResolvedSlot is the synthetic starting state when editing an entity that
// already has a stored URL.
func ResolvedSlot(existingURL string) *Slot {
	if existingURL == "" {
		return &Slot{}
	}
	return &Slot{state: stateResolved, url: existingURL}
}

// StageFile stages a local file for upload, discarding any staged or
// confirmed URL.
func (s *Slot) StageFile(file io.Reader, contentType string) {
	s.state = stateFileStaged
	s.file = file
	s.contentType = contentType
	s.url = ""
}

// StageURL records a typed-but-unconfirmed URL, discarding any staged file.
func (s *Slot) StageURL(url string) {
	s.state = stateURLStaged
	s.file = nil
	s.contentType = ""
	s.url = url
}

// ConfirmURL validates the staged URL. On failure the slot stays staged so
// the user can correct the text; on success the staged file (if any) is gone
// for good and the URL becomes the slot's pending value.
func (s *Slot) ConfirmURL() error {
	trimmed := strings.TrimSpace(s.url)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return models.NewValidationError("imageUrl", "image URL must start with http:// or https://")
	}
	s.state = stateURLConfirmed
	s.file = nil
	s.contentType = ""
	s.url = trimmed
	return nil
}

// Resolve produces the final URL at submit time: staged files are uploaded
// and their public URL read back, confirmed or pre-existing URLs pass
// through, and anything else is a validation failure before any write.
func (s *Slot) Resolve(ctx context.Context, uploader Uploader) (string, error) {
	switch s.state {
	case stateFileStaged:
		url, err := uploader.Upload(ctx, s.file, s.contentType)
		if err != nil {
			return "", fmt.Errorf("upload staged image: %w", err)
		}
		s.state = stateResolved
		s.url = url
		return url, nil
	case stateURLConfirmed, stateResolved:
		s.state = stateResolved
		return s.url, nil
	case stateURLStaged:
		return "", models.NewValidationError("imageUrl", "image URL has not been confirmed")
	default:
		return "", models.NewValidationError("image", "image is required")
	}
}

// IsEmpty reports whether the slot holds nothing resolvable.
func (s *Slot) IsEmpty() bool {
	return s.state == stateEmpty
}

// CombineHouseImages resolves the main slot and every gallery slot, returning
// the main URL and the combined sequence with the main image first. Empty
// gallery slots are skipped; an empty main slot fails validation.
func CombineHouseImages(ctx context.Context, uploader Uploader, main *Slot, gallery []*Slot) (mainURL string, all []string, err error) {
	mainURL, err = main.Resolve(ctx, uploader)
	if err != nil {
		return "", nil, err
	}

	all = []string{mainURL}
	for _, slot := range gallery {
		if slot.IsEmpty() {
			continue
		}
		url, err := slot.Resolve(ctx, uploader)
		if err != nil {
			return "", nil, err
		}
		all = append(all, url)
	}
	return mainURL, all, nil
}
