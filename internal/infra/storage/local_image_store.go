// Package storage implements image persistence on the local filesystem.
package storage

import (
	"os"
	"path"
	"path/filepath"

	"kitchen/config"
	"kitchen/internal/domain/service"
	"kitchen/internal/errors"
)

// localImageStore writes uploaded images into a local directory that is
// served statically under the configured URL path. There is deliberately no
// content-type validation, size limit, or collision handling: uploads come
// from the authenticated admin console only.
type localImageStore struct {
	dir     string
	urlPath string
}

// NewLocalImageStore is the constructor for localImageStore.
func NewLocalImageStore(cfg *config.Config) service.ImageStore {
	return &localImageStore{
		dir:     cfg.Uploads.Dir,
		urlPath: cfg.Uploads.URLPath,
	}
}

// Save writes the image bytes under the upload directory and returns the
// relative URL path the image is served from.
func (s *localImageStore) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	// Strip any path components so uploads cannot escape the directory.
	name := filepath.Base(filename)

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write image file")
	}

	return path.Join(s.urlPath, name), nil
}
