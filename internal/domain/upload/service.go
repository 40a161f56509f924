package upload

import (
	"context"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file cap: 50 MiB.
const MaxFileSize = 50 * 1024 * 1024

// allowedExtensions maps each accepted extension to its file type.
// A filename whose extension is not a key here is rejected outright.
var allowedExtensions = map[string]string{
	"png":  FileTypeImage,
	"jpg":  FileTypeImage,
	"jpeg": FileTypeImage,
	"gif":  FileTypeImage,
	"mp4":  FileTypeVideo,
	"mov":  FileTypeVideo,
	"avi":  FileTypeVideo,
	"mkv":  FileTypeVideo,
	"webm": FileTypeVideo,
}

// UploadedFile is the per-file confirmation returned to the client.
type UploadedFile struct {
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size"`
}

// Service validates and persists upload batches. Files are written to the
// Store as they pass validation; the metadata rows for the whole batch are
// committed together afterwards. A validation failure mid-batch aborts the
// batch without removing files already written in the same call — accepted
// orphan-file risk. A commit failure does remove them, best effort.
type Service struct {
	repo  Repository
	store *Store
}

func NewService(repo Repository, store *Store) *Service {
	return &Service{repo: repo, store: store}
}

// UploadBatch handles one multipart submission: uploaderName and message
// apply to every file. Parts with an empty filename are skipped, matching
// browser behavior for empty file inputs.
func (s *Service) UploadBatch(ctx context.Context, uploaderName, message string, files []*multipart.FileHeader) ([]UploadedFile, error) {
	uploaderName = strings.TrimSpace(uploaderName)
	if uploaderName == "" {
		return nil, ErrUploaderNameRequired
	}
	message = strings.TrimSpace(message)

	selected := make([]*multipart.FileHeader, 0, len(files))
	for _, fh := range files {
		if fh != nil && fh.Filename != "" {
			selected = append(selected, fh)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoFiles
	}

	now := time.Now().UTC()
	records := make([]*Upload, 0, len(selected))
	results := make([]UploadedFile, 0, len(selected))
	written := make([]string, 0, len(selected))

	for _, fh := range selected {
		ext := extensionOf(fh.Filename)
		fileType, ok := allowedExtensions[ext]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fh.Filename)
		}
		if fh.Size > MaxFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, fh.Filename)
		}

		storedName := NewStoredName(ext)

		src, err := fh.Open()
		if err != nil {
			s.discard(written)
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		size, err := s.store.Save(storedName, src)
		src.Close()
		if err != nil {
			s.discard(written)
			return nil, err
		}
		written = append(written, storedName)

		original := sanitizeFilename(fh.Filename)
		records = append(records, &Upload{
			UploaderName:     uploaderName,
			Filename:         storedName,
			OriginalFilename: original,
			FileType:         fileType,
			FileSize:         size,
			Message:          message,
			UploadDate:       now,
		})
		results = append(results, UploadedFile{OriginalFilename: original, Size: size})
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		s.discard(written)
		return nil, fmt.Errorf("failed to save upload records: %w", err)
	}

	return results, nil
}

func (s *Service) discard(names []string) {
	for _, name := range names {
		s.store.Remove(name)
	}
}

// extensionOf returns the lowercased extension after the last dot, without
// the dot. A name with no dot has no extension.
func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NewStoredName builds the on-disk name: 128 random bits as hex plus the
// original extension. Collisions are not checked — the identifier space
// makes them negligible.
func NewStoredName(ext string) string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + "." + ext
}

// sanitizeFilename strips path components and reduces the client-supplied
// name to a safe character set. The result is stored for display only; the
// file itself is kept under the generated name.
func sanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, name)
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
