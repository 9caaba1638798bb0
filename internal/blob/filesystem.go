package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilesystemStore keeps bundles on local disk under
// <root>/<appID>/<sha256>. Used for development and tests; production
// deployments point at S3Store.
type FilesystemStore struct {
	root string
}

func NewFilesystemStore(root string) *FilesystemStore {
	return &FilesystemStore{root: root}
}

func (s *FilesystemStore) Put(ctx context.Context, appID string, content io.Reader) (Object, error) {
	const fn = "FilesystemStore:Put"
	dir := filepath.Join(s.root, appID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}

	tmp, err := os.CreateTemp(dir, "upload-*")
	if err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}
	defer os.Remove(tmp.Name())

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, hasher), content)
	if err != nil {
		tmp.Close()
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}

	hash := hex.EncodeToString(hasher.Sum(nil))
	path := filepath.Join(dir, hash)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Object{}, fmt.Errorf("%s:%w:%w", fn, ErrPutFailed, err)
	}
	return Object{Locator: path, Hash: hash, Size: size}, nil
}
