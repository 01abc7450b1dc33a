// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores objects as plain files under a root directory.
type Local struct {
	root      string
	publicURL string
}

// NewLocal creates root when missing.
func NewLocal(root, publicURL string) (*Local, error) {
	if root == "" {
		return nil, errors.New("storage: local root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &Local{root: root, publicURL: publicURL}, nil
}

// Root is the directory served at the public URL.
func (local *Local) Root() string { return local.root }

func (local *Local) pathFor(key string) (string, string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", "", err
	}
	return clean, filepath.Join(local.root, filepath.FromSlash(clean)), nil
}

func (local *Local) Put(_ context.Context, key string, body io.Reader, contentType string) (Object, error) {
	clean, target, err := local.pathFor(key)
	if err != nil {
		return Object{}, err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Object{}, fmt.Errorf("storage: create directory: %w", err)
	}

	// Write to a sibling temp file and rename so readers never see a partial object
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return Object{}, fmt.Errorf("storage: create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	size, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Object{}, fmt.Errorf("storage: write %s: %w", clean, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return Object{}, fmt.Errorf("storage: move %s: %w", clean, err)
	}

	return Object{Key: clean, URL: local.URL(clean), Size: size, ContentType: contentType}, nil
}

func (local *Local) Open(_ context.Context, key string) (io.ReadCloser, error) {
	_, target, err := local.pathFor(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", key, err)
	}
	return file, nil
}

func (local *Local) Delete(_ context.Context, key string) error {
	_, target, err := local.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (local *Local) URL(key string) string {
	return joinURL(local.publicURL, key)
}
