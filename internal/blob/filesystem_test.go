package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FilesystemStore_Put(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())
	content := "zipped bundle bytes"

	object, err := store.Put(context.Background(), "app-1", strings.NewReader(content))
	assert.NoError(t, err)

	sum := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(sum[:]), object.Hash)
	assert.Equal(t, int64(len(content)), object.Size)

	raw, err := os.ReadFile(object.Locator)
	assert.NoError(t, err)
	assert.Equal(t, content, string(raw))
	assert.Equal(t, object.Hash, filepath.Base(object.Locator))
}

// Same bytes land at the same path, so re-uploads are idempotent.
func Test_FilesystemStore_Put_ContentAddressed(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())

	first, err := store.Put(context.Background(), "app-1", strings.NewReader("same bytes"))
	assert.NoError(t, err)
	second, err := store.Put(context.Background(), "app-1", strings.NewReader("same bytes"))
	assert.NoError(t, err)

	assert.Equal(t, first.Locator, second.Locator)
	assert.Equal(t, first.Hash, second.Hash)

	other, err := store.Put(context.Background(), "app-1", strings.NewReader("different bytes"))
	assert.NoError(t, err)
	assert.NotEqual(t, first.Hash, other.Hash)
}

func Test_FilesystemStore_Put_SeparatesApps(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())

	one, err := store.Put(context.Background(), "app-1", strings.NewReader("bytes"))
	assert.NoError(t, err)
	two, err := store.Put(context.Background(), "app-2", strings.NewReader("bytes"))
	assert.NoError(t, err)

	assert.Equal(t, one.Hash, two.Hash)
	assert.NotEqual(t, one.Locator, two.Locator)
}
