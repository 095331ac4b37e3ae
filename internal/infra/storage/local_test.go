package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sebetamart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestLocalImageStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalImageStore(dir, 1<<20)
	require.NoError(t, err)

	url, err := s.Save(context.Background(), fileHeader(t, "pixel.png", tinyPNG))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, PublicPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored := filepath.Join(dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, data)

	require.NoError(t, s.Remove(context.Background(), url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, s.Remove(context.Background(), url))
}

func TestLocalImageStore_RejectsNonImages(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), fileHeader(t, "evil.png", []byte("#!/bin/sh\necho hi\n")))
	assert.ErrorIs(t, err, repository.ErrUnsupportedImage)
}

func TestLocalImageStore_RejectsLargeFiles(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), 10)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), fileHeader(t, "pixel.png", tinyPNG))
	assert.ErrorIs(t, err, repository.ErrImageTooLarge)
}

func TestLocalImageStore_RemoveIgnoresForeignURLs(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	assert.NoError(t, s.Remove(context.Background(), "https://cdn.example.com/x.png"))
	assert.NoError(t, s.Remove(context.Background(), ""))
}
