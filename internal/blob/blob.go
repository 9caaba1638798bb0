package blob

import (
	"context"
	"errors"
	"io"
)

var ErrPutFailed = errors.New("blob put failed")

// Object describes stored bundle content. Hash is the hex SHA-256 of the
// bytes and doubles as the content address.
type Object struct {
	Locator string
	Hash    string
	Size    int64
}

// Store holds bundle artifacts. Content addressing means re-uploading the
// same bytes is idempotent.
type Store interface {
	Put(ctx context.Context, appID string, content io.Reader) (Object, error)
}
