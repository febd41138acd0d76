package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/debug/timing"
	"rgb-slicer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func newTestLoader(fallback func([]byte) (*image.RGBA, error)) *Loader {
	l := NewLoader(logger.NoOpLogger{}, timing.NewTracker(nil))
	l.fallback = fallback
	return l
}

func TestLoaderDecodesBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, solidImage(4, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255})))

	data, err := newTestLoader(nil).LoadFromBytes(context.Background(), buf.Bytes(), "tiny.bmp")
	require.NoError(t, err)
	assert.Equal(t, "bmp", data.Format)
	assert.Equal(t, 4, data.Width)
	assert.Equal(t, 3, data.Height)
}

func TestLoaderDecodesJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solidImage(8, 8, color.NRGBA{R: 200, A: 255}), nil))

	data, err := newTestLoader(nil).LoadFromReader(context.Background(), &buf, "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg", data.Format)
}

func TestLoaderFallsBackToOpenCV(t *testing.T) {
	fallbackImg := image.NewRGBA(image.Rect(0, 0, 5, 2))
	called := false
	loader := newTestLoader(func([]byte) (*image.RGBA, error) {
		called = true
		return fallbackImg, nil
	})

	data, err := loader.LoadFromBytes(context.Background(), []byte("exotic"), "scan.tif")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "tiff", data.Format)
	assert.Equal(t, 5, data.Width)
}

func TestLoaderRejectsUndecodable(t *testing.T) {
	loader := newTestLoader(func([]byte) (*image.RGBA, error) {
		return nil, errors.New("nope")
	})

	_, err := loader.LoadFromBytes(context.Background(), []byte("junk"), "junk.png")
	assert.Error(t, err)
}

func TestLoaderRejectsEmptyImage(t *testing.T) {
	loader := newTestLoader(func([]byte) (*image.RGBA, error) {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	})

	_, err := loader.LoadFromBytes(context.Background(), []byte("x"), "empty.webp")
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestSliceFileName(t *testing.T) {
	assert.Equal(t, "slice_green_007.png", SliceFileName(colorcube.FixedGreen, 7, "png"))
	assert.Equal(t, "slice_red_255.jpg", SliceFileName(colorcube.FixedRed, 255, "jpeg"))
}
