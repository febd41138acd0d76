package pipeline

import (
	"context"
	"errors"
	"image"
	"time"
)

var (
	ErrNoImage    = errors.New("no image loaded")
	ErrEmptyImage = errors.New("image has no pixels")
)

// TimingTracker measures pipeline stages.
type TimingTracker interface {
	StartTiming(ctx context.Context, operation string) context.Context
	EndTiming(ctx context.Context) time.Duration
}

// ImageData is a decoded source image and where it came from.
type ImageData struct {
	Image  image.Image
	Width  int
	Height int
	Format string
	Name   string
}
