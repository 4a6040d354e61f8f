// Package storage provides the file store used for resumes, company logos,
// and avatars. Services depend on the FileStore interface so file I/O can be
// faked in tests.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Upload is an in-memory file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Size returns the upload size in bytes.
func (u *Upload) Size() int64 {
	return int64(len(u.Content))
}

// FileStore stores uploaded files and deletes them by reference. Store
// returns an opaque object key that callers persist alongside the owning row.
type FileStore interface {
	Store(ctx context.Context, prefix string, upload *Upload) (string, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds a collision-free object key under prefix, keeping the
// original file extension so downloads get a sensible content type.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.NewString(), ext)
}
