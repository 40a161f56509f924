package gallery

import (
	"context"

	"weddingwall/internal/domain/upload"
)

// UploadLister is the slice of the upload repository the gallery needs:
// approved, image-type uploads only, newest first.
type UploadLister interface {
	ListApprovedImages(ctx context.Context) ([]*upload.Upload, error)
}
