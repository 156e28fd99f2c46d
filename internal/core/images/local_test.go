package images

import (
	"Bulletin/internal/core/validation"
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLocalStore_SaveResizesProfileImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:3000/", nil)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), KindProfile, &Upload{
		ContentType: "image/png",
		Data:        encodePNG(t, 600, 300),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "profiles/"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 128, cfg.Height)

	assert.Equal(t, "http://localhost:3000/uploads/"+name, store.URL(name))
	assert.Equal(t, "", store.URL(""))
}

func TestLocalStore_SaveKeepsSmallImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "", nil)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), KindPost, &Upload{Data: encodePNG(t, 40, 20)})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
}

// oversizedPNG returns a valid tiny PNG whose header declares width x height
func oversizedPNG(t *testing.T, width, height uint32) []byte {
	t.Helper()
	data := encodePNG(t, 1, 1)
	// IHDR: length at 8, type at 12, width/height at 16 and 20, CRC at 29
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestLocalStore_RejectsOversizedDimensions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "", nil)
	require.NoError(t, err)

	data := oversizedPNG(t, 30000, 30000)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 30000, cfg.Width)

	_, err = store.Save(context.Background(), KindPost, &Upload{ContentType: "image/png", Data: data})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	entries, err := os.ReadDir(filepath.Join(dir, string(KindPost)))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_RejectsNonImage(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "", nil)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), KindPost, &Upload{ContentType: "image/png", Data: []byte("not an image")})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.Save(context.Background(), KindPost, &Upload{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLocalStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "", nil)
	require.NoError(t, err)
	ctx := context.Background()

	name, err := store.Save(ctx, KindPost, &Upload{Data: encodePNG(t, 10, 10)})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, name))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is fine
	assert.NoError(t, store.Delete(ctx, name))

	assert.ErrorIs(t, store.Delete(ctx, "../outside.txt"), ErrInvalidName)
	assert.ErrorIs(t, store.Delete(ctx, "/etc/passwd"), ErrInvalidName)
	assert.ErrorIs(t, store.Delete(ctx, ""), ErrInvalidName)
}
