package images

import (
	"Bulletin/internal/core/validation"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// maxWidths bounds the stored width per kind; taller-than-wide images keep their aspect ratio
var maxWidths = map[Kind]int{
	KindPost:    1280,
	KindProfile: 256,
}

const jpegQuality = 85

// maxPixels caps decoded dimensions; a small file can declare a huge canvas
const maxPixels = 40_000_000

// LocalStore writes images under a directory served at {publicURL}/uploads
type LocalStore struct {
	logger    *slog.Logger
	dir       string
	publicURL string
}

// NewLocalStore creates the upload directories if needed
func NewLocalStore(dir, publicURL string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for kind := range maxWidths {
		if err := os.MkdirAll(filepath.Join(dir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &LocalStore{
		dir:       dir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger,
	}, nil
}

// Save decodes the upload, downsizes it to the kind's max width and writes it
// under a random name. GIFs are stored as uploaded so animations survive.
func (s *LocalStore) Save(ctx context.Context, kind Kind, upload *Upload) (string, error) {
	if upload.Size() == 0 {
		return "", fmt.Errorf("%w: empty image data", ErrUnsupportedFormat)
	}
	maxWidth, ok := maxWidths[kind]
	if !ok {
		return "", fmt.Errorf("unknown image kind %q", kind)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return "", validation.New("image", fmt.Sprintf("dimensions %dx%d exceed the 40 megapixel limit", cfg.Width, cfg.Height))
	}

	img, format, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	var (
		out bytes.Buffer
		ext string
	)
	switch format {
	case "gif":
		out.Write(upload.Data)
		ext = ".gif"
	case "png":
		if err := imaging.Encode(&out, fit(img, maxWidth), imaging.PNG); err != nil {
			return "", fmt.Errorf("%w: failed to encode PNG: %v", ErrProcessingFailed, err)
		}
		ext = ".png"
	case "jpeg", "webp":
		if err := imaging.Encode(&out, fit(img, maxWidth), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return "", fmt.Errorf("%w: failed to encode JPEG: %v", ErrProcessingFailed, err)
		}
		ext = ".jpg"
	default:
		return "", fmt.Errorf("%w: format %s", ErrUnsupportedFormat, format)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := string(kind) + "/" + uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, filepath.FromSlash(name)), out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	s.logger.Debug("image stored", "name", name, "format", format, "bytes", out.Len())
	return name, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// URL returns the public address of a stored image, or "" for no image
func (s *LocalStore) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.publicURL + "/uploads/" + name
}

func (s *LocalStore) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if name == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, clean), nil
}

func fit(img image.Image, maxWidth int) image.Image {
	if img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}
