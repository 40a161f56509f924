package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	CreateBatch(ctx context.Context, uploads []*Upload) error
	GetByID(ctx context.Context, id int64) (*Upload, error)
	Update(ctx context.Context, u *Upload) error
	List(ctx context.Context) ([]*Upload, error)
	ListApprovedImages(ctx context.Context) ([]*Upload, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBatch inserts all rows of one upload batch. gorm wraps the
// multi-row insert in a single transaction, so a batch commits
// all-or-nothing.
func (r *repository) CreateBatch(ctx context.Context, uploads []*Upload) error {
	if len(uploads) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&uploads).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Upload, error) {
	var u Upload
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUploadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *Upload) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) List(ctx context.Context) ([]*Upload, error) {
	uploads := make([]*Upload, 0)
	err := r.db.WithContext(ctx).
		Order("upload_date DESC, id DESC").
		Find(&uploads).Error
	return uploads, err
}

func (r *repository) ListApprovedImages(ctx context.Context) ([]*Upload, error) {
	uploads := make([]*Upload, 0)
	err := r.db.WithContext(ctx).
		Where("is_approved = ? AND file_type = ?", true, FileTypeImage).
		Order("upload_date DESC, id DESC").
		Find(&uploads).Error
	return uploads, err
}
