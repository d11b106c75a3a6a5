// Package filestore keeps delivery photos on the local disk.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// PhotoStore writes photos under root as deliveries/<order id>/<random id><ext>.
// References are slash-separated paths relative to root.
type PhotoStore struct {
	root string
}

func NewPhotoStore(root string) (*PhotoStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &PhotoStore{root: root}, nil
}

func (s *PhotoStore) Save(ctx context.Context, orderID kernel.UUID, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", errs.NewValueIsInvalidErrorWithCause("photo", fmt.Errorf("%q is not a supported image type", ext))
	}

	ref := path.Join("deliveries", orderID.String(), kernel.NewUUID().String()+ext)
	full := s.path(ref)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}
	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(full)
		return "", fmt.Errorf("close photo: %w", err)
	}

	return ref, nil
}

// Delete removes a stored photo. Missing files are not an error.
func (s *PhotoStore) Delete(_ context.Context, ref string) error {
	err := os.Remove(s.path(ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

func (s *PhotoStore) path(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+ref)))
}
