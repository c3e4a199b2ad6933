package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_SaveAndDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), 1024)
	assert.NoError(t, err)

	data := []byte("%PDF-1.4 content")
	locator, err := store.Save(data, "lecture.pdf")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(locator, "_lecture.pdf"))

	stored, err := os.ReadFile(locator)
	assert.NoError(t, err)
	assert.Equal(t, data, stored)

	assert.NoError(t, store.Delete(locator))
	_, err = os.Stat(locator)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_SameNameDoesNotCollide(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), 1024)
	assert.NoError(t, err)

	first, err := store.Save([]byte("one"), "lecture.pdf")
	assert.NoError(t, err)
	second, err := store.Save([]byte("two"), "lecture.pdf")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileStore_RejectsOversizedDocument(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), 8)
	assert.NoError(t, err)

	locator, err := store.Save([]byte("more than eight bytes"), "lecture.pdf")
	assert.Empty(t, locator)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidDocument, domainErr.Code)
}

func TestFileStore_DeleteMissingIsNoError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, 1024)
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(filepath.Join(dir, "never-existed.pdf")))
}

func TestFileStore_StripsPathFromFileName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, 1024)
	assert.NoError(t, err)

	locator, err := store.Save([]byte("data"), "../escape.pdf")
	assert.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(locator))
}
