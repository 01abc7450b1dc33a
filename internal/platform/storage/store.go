// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage persists uploaded files (stored-good photos and case PDFs).

Two drivers implement [Store]: [Local] writes under a directory served by the
API itself, [S3] writes to any S3-compatible bucket. Callers only see object
keys and public URLs; the database stores the key.

Key layout:

	documents/<yyyy>/<mm>/<uuid>.pdf
	goods/<yyyy>/<mm>/<slug>_<token>_resized.jpg
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/config"
	"github.com/taibuivan/gumruk/pkg/slug"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

// ErrNotFound is returned by Open when the key does not exist.
var ErrNotFound = errors.New("storage: object not found")

// Object describes a stored file.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Store is the file persistence boundary used by the goods and task services.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	/*
		Put writes body under key, replacing any existing object.

		Parameters:
		  - ctx: context.Context
		  - key: string (slash separated, relative)
		  - body: io.Reader
		  - contentType: string

		Returns:
		  - Object: stored object with its public URL
		  - error: Any persistence error
	*/
	Put(ctx context.Context, key string, body io.Reader, contentType string) (Object, error)

	// Open streams the object back. Missing keys yield [ErrNotFound].
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public address of key.
	URL(key string) string
}

// New builds the driver selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverS3:
		return NewS3(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicURL:       cfg.StoragePublicURL,
		})
	case config.StorageDriverLocal:
		return NewLocal(cfg.StorageLocalDir, cfg.StoragePublicURL)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}

// # Key Layout

// DocumentKey returns a fresh key for an uploaded PDF.
func DocumentKey(now time.Time) string {
	return fmt.Sprintf("documents/%04d/%02d/%s.pdf", now.Year(), int(now.Month()), uuid.New())
}

// ImageKey returns the key of a resized stored-good photo. The original
// filename is slugged and suffixed with a short random token so repeated
// uploads of "photo.jpg" do not overwrite each other.
func ImageKey(now time.Time, filename string) string {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, "\\", "/")), path.Ext(filename))
	name := slug.From(base)
	if name == "" {
		name = "image"
	}
	id := uuid.New()
	token := id[len(id)-8:]
	return fmt.Sprintf("goods/%04d/%02d/%s_%s_resized.jpg", now.Year(), int(now.Month()), name, token)
}

// cleanKey rejects absolute and traversing keys.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: empty key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return path.Clean(key), nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
