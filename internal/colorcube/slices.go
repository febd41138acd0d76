package colorcube

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

const (
	// SliceCount is the number of slices per set, one per fixed-axis value.
	SliceCount = 256
	// SliceSize is the edge length of every slice image.
	SliceSize = 256
)

// SliceSet is a complete, immutable set of slices for one axis and threshold.
type SliceSet struct {
	Axis      Axis
	Threshold int
	slices    [SliceCount]*image.Gray
}

// Select returns the slice for a fixed-axis value. Out-of-range values
// report false so callers can keep whatever they are showing.
func (s *SliceSet) Select(fixed int) (*image.Gray, bool) {
	if s == nil || fixed < 0 || fixed >= SliceCount {
		return nil, false
	}
	return s.slices[fixed], true
}

func (s *SliceSet) Len() int {
	if s == nil {
		return 0
	}
	return SliceCount
}

// Renderer turns a frequency table into slice sets.
type Renderer struct {
	table   *FrequencyTable
	workers int
}

// NewRenderer creates a renderer over table. workers <= 0 uses one worker
// per CPU.
func NewRenderer(table *FrequencyTable, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		table:   table,
		workers: min(workers, SliceCount),
	}
}

func (sr *Renderer) Workers() int {
	return sr.workers
}

// Generate renders all slices for axis at threshold. The table must not be
// rebuilt while Generate runs. Cancellation is checked between slices; a
// cancelled run returns ctx.Err() and no set.
func (sr *Renderer) Generate(ctx context.Context, axis Axis, threshold int) (*SliceSet, error) {
	m, err := axis.mapper()
	if err != nil {
		return nil, err
	}
	if sr.table == nil {
		return nil, fmt.Errorf("renderer has no frequency table")
	}

	t := ClampThreshold(threshold)
	lut := intensityTable(t)
	set := &SliceSet{Axis: axis, Threshold: t}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < sr.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for fixed := range jobs {
				set.slices[fixed] = sr.renderSlice(m, uint8(fixed), lut)
			}
		}()
	}

feed:
	for fixed := 0; fixed < SliceCount; fixed++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- fixed:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func (sr *Renderer) renderSlice(m mapper, fixed uint8, lut []uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, SliceSize, SliceSize))
	saturation := uint32(len(lut))

	for v := 0; v < SliceSize; v++ {
		row := img.Pix[v*img.Stride : v*img.Stride+SliceSize]
		for u := 0; u < SliceSize; u++ {
			r, g, b := m(fixed, uint8(u), uint8(v))
			freq := sr.table.Lookup(r, g, b)
			if freq >= saturation {
				row[u] = 255
			} else {
				row[u] = lut[freq]
			}
		}
	}
	return img
}
