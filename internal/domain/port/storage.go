package port

import "context"

// BlobStore persists derived artifacts (heatmaps, report documents).
type BlobStore interface {
	// Upload stores the blob and returns a URL the API can hand out.
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded blob.
	Delete(ctx context.Context, name string) error
}
