// Package assets holds the ephemeral asset-reference store: uploaded
// stylesheets and images keyed by opaque id, dereferenceable as /assets/{id}
// both by the prompt assembly and by the rendered artifact itself.
package assets

import (
	"context"
	"errors"

	"screencraft-backend/internal/models"
)

var (
	// ErrNotFound reports an unknown or already-removed asset id.
	ErrNotFound = errors.New("asset not found")
	// ErrInvalidDataURL reports a stored value that is not a well-formed
	// data URL. Distinct from ErrNotFound so serving maps it to 400, not 404.
	ErrInvalidDataURL = errors.New("stored asset is not a valid data URL")
)

// Content is a resolved asset ready to serve.
type Content struct {
	Bytes    []byte
	MimeType string
	FileName string
}

// Store is the asset registry. Implementations must be safe for concurrent
// use; a Remove racing a Resolve on the same id either serves the record or
// fails with ErrNotFound, never a partial read.
type Store interface {
	// Upload mints a fresh unique id per record and returns the public
	// references in input order.
	Upload(ctx context.Context, uploads []models.AssetUpload) ([]models.AssetReference, error)
	// Resolve decodes the stored data URL. ErrNotFound for unknown ids,
	// ErrInvalidDataURL for malformed stored values.
	Resolve(ctx context.Context, id string) (Content, error)
	// Remove deletes the record; ErrNotFound if absent. A removed id never
	// resolves again.
	Remove(ctx context.Context, id string) error
	// List returns the current references in insertion order.
	List(ctx context.Context) ([]models.AssetReference, error)
}

// URLFor derives the public URL of an asset id.
func URLFor(id string) string {
	return "/assets/" + id
}
