package contact

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context) ([]*Contact, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) List(ctx context.Context) ([]*Contact, error) {
	contacts := make([]*Contact, 0)
	err := r.db.WithContext(ctx).
		Order("created_date DESC, id DESC").
		Find(&contacts).Error
	return contacts, err
}
