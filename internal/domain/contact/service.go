package contact

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates and persists one contact message. The email check is
// deliberately minimal — presence of '@' and '.' — not RFC validation.
func (s *Service) Submit(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return ErrFieldsRequired
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}

	return s.repo.Create(ctx, &Contact{
		Name:        name,
		Email:       email,
		Message:     message,
		CreatedDate: time.Now().UTC(),
	})
}
