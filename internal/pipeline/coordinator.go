package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/logger"
)

// Probe is the color under a slice coordinate and how often it occurs.
type Probe struct {
	U, V    int
	R, G, B uint8
	Count   uint32
}

// Coordinator owns one image session: the source image, its frequency table
// and the current slice set. Loads and regenerations are serialized; the
// table and slice set are swapped in whole, so readers never see a partial
// result.
type Coordinator struct {
	work sync.Mutex

	mu        sync.RWMutex
	image     *ImageData
	table     *colorcube.FrequencyTable
	slices    *colorcube.SliceSet
	axis      colorcube.Axis
	threshold int
	selected  int

	workers       int
	loader        *Loader
	saver         *Saver
	logger        logger.Logger
	timingTracker TimingTracker
}

func NewCoordinator(log logger.Logger, timing TimingTracker, workers int) *Coordinator {
	return &Coordinator{
		axis:          colorcube.FixedRed,
		threshold:     colorcube.DefaultThreshold,
		workers:       workers,
		loader:        NewLoader(log, timing),
		saver:         NewSaver(log),
		logger:        log,
		timingTracker: timing,
	}
}

func (c *Coordinator) LoadFile(ctx context.Context, path string) (*ImageData, error) {
	imageData, err := c.loader.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return imageData, c.SetImage(ctx, imageData)
}

func (c *Coordinator) LoadImage(ctx context.Context, reader io.Reader, name string) (*ImageData, error) {
	imageData, err := c.loader.LoadFromReader(ctx, reader, name)
	if err != nil {
		return nil, err
	}
	return imageData, c.SetImage(ctx, imageData)
}

// SetImage counts the colors of imageData into a fresh table and makes it
// current. The previous slice set is dropped; call Regenerate afterwards.
func (c *Coordinator) SetImage(ctx context.Context, imageData *ImageData) error {
	if imageData == nil || imageData.Image == nil {
		return ErrNoImage
	}

	c.work.Lock()
	defer c.work.Unlock()

	timingCtx := c.timingTracker.StartTiming(ctx, "build_table")
	table := colorcube.NewFrequencyTable()
	table.Build(imageData.Image)
	c.timingTracker.EndTiming(timingCtx)

	c.mu.Lock()
	c.image = imageData
	c.table = table
	c.slices = nil
	c.mu.Unlock()

	c.logger.Info("Coordinator", "frequency table built", map[string]interface{}{
		"pixels":   table.Total(),
		"distinct": table.Distinct(),
	})
	return nil
}

// Regenerate rebuilds every slice for axis and threshold and makes the new
// set current. On error the previous set stays in place.
func (c *Coordinator) Regenerate(ctx context.Context, axis colorcube.Axis, threshold int) (*colorcube.SliceSet, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("%w: %d", colorcube.ErrInvalidAxis, int(axis))
	}

	c.work.Lock()
	defer c.work.Unlock()

	c.mu.RLock()
	table := c.table
	c.mu.RUnlock()
	if table == nil {
		return nil, ErrNoImage
	}

	timingCtx := c.timingTracker.StartTiming(ctx, "generate_slices")
	set, err := colorcube.NewRenderer(table, c.workers).Generate(ctx, axis, threshold)
	elapsed := c.timingTracker.EndTiming(timingCtx)
	if err != nil {
		c.logger.Warning("Coordinator", "slice generation aborted", map[string]interface{}{
			"axis":  axis.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	c.mu.Lock()
	c.slices = set
	c.axis = set.Axis
	c.threshold = set.Threshold
	c.mu.Unlock()

	c.logger.Info("Coordinator", "slices generated", map[string]interface{}{
		"axis":        set.Axis.String(),
		"threshold":   set.Threshold,
		"duration_ms": elapsed.Milliseconds(),
	})
	return set, nil
}

// SelectSlice returns the slice for fixed and remembers it as the current
// selection. Out-of-range values, or no slices yet, leave the selection alone.
func (c *Coordinator) SelectSlice(fixed int) (*image.Gray, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slice, ok := c.slices.Select(fixed)
	if !ok {
		return nil, false
	}
	c.selected = fixed
	return slice, true
}

// Probe resolves the color at slice coordinate (u, v) for the current axis
// and selected slice.
func (c *Coordinator) Probe(u, v int) (Probe, error) {
	if u < 0 || u >= colorcube.SliceSize || v < 0 || v >= colorcube.SliceSize {
		return Probe{}, fmt.Errorf("coordinate (%d,%d) outside slice", u, v)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return Probe{}, ErrNoImage
	}

	r, g, b, err := colorcube.ResolveColor(c.axis, uint8(c.selected), uint8(u), uint8(v))
	if err != nil {
		return Probe{}, err
	}

	return Probe{
		U: u, V: v,
		R: r, G: g, B: b,
		Count: c.table.Lookup(r, g, b),
	}, nil
}

// SamplePixel reads the source pixel at (x, y), relative to the image
// bounds, and how often its color occurs. Alpha is dropped.
func (c *Coordinator) SamplePixel(x, y int) (Probe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.image == nil || c.table == nil {
		return Probe{}, ErrNoImage
	}

	bounds := c.image.Image.Bounds()
	if x < 0 || y < 0 || x >= bounds.Dx() || y >= bounds.Dy() {
		return Probe{}, fmt.Errorf("pixel (%d,%d) outside %dx%d image", x, y, bounds.Dx(), bounds.Dy())
	}

	px := color.NRGBAModel.Convert(c.image.Image.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
	return Probe{
		U: x, V: y,
		R: px.R, G: px.G, B: px.B,
		Count: c.table.Lookup(px.R, px.G, px.B),
	}, nil
}

func (c *Coordinator) SaveSlices(dir string, values []int, format string) ([]string, error) {
	c.mu.RLock()
	set := c.slices
	c.mu.RUnlock()

	if set == nil {
		return nil, ErrNoImage
	}
	return c.saver.SaveSlices(dir, set, values, format)
}

func (c *Coordinator) Summary(topN int) (colorcube.Summary, error) {
	c.mu.RLock()
	table := c.table
	c.mu.RUnlock()

	if table == nil {
		return colorcube.Summary{}, ErrNoImage
	}
	return colorcube.Summarize(table, topN), nil
}

func (c *Coordinator) Image() *ImageData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.image
}

func (c *Coordinator) Slices() *colorcube.SliceSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slices
}

func (c *Coordinator) Axis() colorcube.Axis {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.axis
}

func (c *Coordinator) Threshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

func (c *Coordinator) Selected() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

// Cleanup drops the session state.
func (c *Coordinator) Cleanup() {
	c.work.Lock()
	defer c.work.Unlock()

	c.mu.Lock()
	c.image = nil
	c.table = nil
	c.slices = nil
	c.mu.Unlock()

	c.logger.Debug("Coordinator", "session cleared", nil)
}

// Shutdown satisfies shutdown.Shutdownable.
func (c *Coordinator) Shutdown() {
	c.Cleanup()
}
