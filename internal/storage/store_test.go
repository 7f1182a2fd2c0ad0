package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsaisankalp/ashram-assert/internal/storage"
)

func TestDocumentKey(t *testing.T) {
	t.Run("groups by asset and keeps the extension", func(t *testing.T) {
		key := storage.DocumentKey("asset-1", "RC Book.pdf")
		assert.True(t, strings.HasPrefix(key, "assets/asset-1/"))
		assert.True(t, strings.HasSuffix(key, "-rc-book.pdf"))
	})

	t.Run("keys are unique per upload", func(t *testing.T) {
		a := storage.DocumentKey("asset-1", "invoice.pdf")
		b := storage.DocumentKey("asset-1", "invoice.pdf")
		assert.NotEqual(t, a, b)
	})

	t.Run("hostile filenames are flattened", func(t *testing.T) {
		key := storage.DocumentKey("asset-1", "../../etc/passwd")
		assert.NotContains(t, key, "..")
		assert.NotContains(t, strings.TrimPrefix(key, "assets/asset-1/"), "/")
	})

	t.Run("empty filename falls back", func(t *testing.T) {
		key := storage.DocumentKey("asset-1", "")
		assert.True(t, strings.HasSuffix(key, "-document"))
	})
}
