package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rgb-slicer/internal/logger"
	"rgb-slicer/internal/opencv/conversion"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader decodes source images. Go decoders are tried first; OpenCV handles
// anything they reject.
type Loader struct {
	logger        logger.Logger
	timingTracker TimingTracker
	fallback      func([]byte) (*image.RGBA, error)
}

func NewLoader(log logger.Logger, timing TimingTracker) *Loader {
	return &Loader{
		logger:        log,
		timingTracker: timing,
		fallback:      conversion.DecodeImage,
	}
}

// SupportedExtensions lists the file extensions offered in open dialogs.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

func (l *Loader) LoadFile(ctx context.Context, path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer file.Close()

	return l.LoadFromReader(ctx, file, filepath.Base(path))
}

func (l *Loader) LoadFromReader(ctx context.Context, reader io.Reader, name string) (*ImageData, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	l.logger.Debug("ImageLoader", "image data read", map[string]interface{}{
		"name":       name,
		"size_bytes": len(data),
	})

	return l.LoadFromBytes(ctx, data, name)
}

func (l *Loader) LoadFromBytes(ctx context.Context, data []byte, name string) (*ImageData, error) {
	timingCtx := l.timingTracker.StartTiming(ctx, "decode")
	defer l.timingTracker.EndTiming(timingCtx)

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.logger.Debug("ImageLoader", "Go decoders failed, trying OpenCV", map[string]interface{}{
			"name":  name,
			"error": err.Error(),
		})

		cvImg, cvErr := l.fallback(data)
		if cvErr != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		img = cvImg
		format = formatFromName(name)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyImage)
	}

	imageData := &ImageData{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Name:   name,
	}

	l.logger.Info("ImageLoader", "image loaded successfully", map[string]interface{}{
		"name":   name,
		"width":  imageData.Width,
		"height": imageData.Height,
		"format": format,
	})

	return imageData, nil
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tiff", ".tif":
		return "tiff"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	default:
		return "unknown"
	}
}
