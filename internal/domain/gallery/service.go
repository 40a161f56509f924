package gallery

import "context"

type Service struct {
	uploads UploadLister
}

func NewService(uploads UploadLister) *Service {
	return &Service{uploads: uploads}
}

// List returns the public gallery: approved images, newest first. Videos
// are excluded even when approved.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	uploads, err := s.uploads.ListApprovedImages(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(uploads))
	for _, u := range uploads {
		entries = append(entries, Entry{
			ID:           u.ID,
			Filename:     u.Filename,
			Type:         u.FileType,
			UploaderName: u.UploaderName,
			UploadDate:   u.UploadDate,
		})
	}
	return entries, nil
}
