package admin

import (
	"context"

	"weddingwall/internal/domain/contact"
	"weddingwall/internal/domain/upload"
)

// Service backs the moderation endpoints: listing everything that came in
// and approving uploads for the public gallery.
type Service struct {
	uploads  UploadRepository
	contacts ContactRepository
}

func NewService(uploads UploadRepository, contacts ContactRepository) *Service {
	return &Service{uploads: uploads, contacts: contacts}
}

// ListUploads returns every upload, newest first.
func (s *Service) ListUploads(ctx context.Context) ([]*upload.Upload, error) {
	return s.uploads.List(ctx)
}

// ListContacts returns every contact message, newest first.
func (s *Service) ListContacts(ctx context.Context) ([]*contact.Contact, error) {
	return s.contacts.List(ctx)
}

// ApproveUpload flips is_approved to true. Approving an already-approved
// upload is a no-op that still succeeds.
func (s *Service) ApproveUpload(ctx context.Context, id int64) error {
	u, err := s.uploads.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsApproved {
		return nil
	}
	u.IsApproved = true
	return s.uploads.Update(ctx, u)
}
