package admin

import (
	"context"

	"weddingwall/internal/domain/contact"
	"weddingwall/internal/domain/upload"
)

// Narrow views of the domain repositories — only what moderation needs.

type UploadRepository interface {
	List(ctx context.Context) ([]*upload.Upload, error)
	GetByID(ctx context.Context, id int64) (*upload.Upload, error)
	Update(ctx context.Context, u *upload.Upload) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]*contact.Contact, error)
}
