package colorcube

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTwoColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 2, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 2, A: 255})
	img.SetNRGBA(3, 0, color.NRGBA{R: 2, A: 255})

	table := NewFrequencyTable()
	table.Build(img)
	s := Summarize(table, 5)

	assert.Equal(t, uint64(4), s.Pixels)
	assert.Equal(t, 2, s.Distinct)
	assert.Equal(t, uint32(3), s.MaxCount)
	assert.InDelta(t, 2.0, s.MeanCount, 1e-9)
	assert.InDelta(t, 0.8113, s.EntropyBits, 1e-3)

	require.Len(t, s.Top, 2)
	r, g, b := s.Top[0].RGB()
	assert.Equal(t, [3]uint8{2, 0, 0}, [3]uint8{r, g, b})
	assert.Equal(t, uint32(3), s.Top[0].Count)
}

func TestSummarizeSingleColor(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(filledNRGBA(3, 3, color.NRGBA{R: 7, G: 8, B: 9, A: 255}))
	s := Summarize(table, 0)

	assert.Equal(t, 1, s.Distinct)
	assert.Zero(t, s.StdDevCount)
	assert.InDelta(t, 0, s.EntropyBits, 1e-12)
	assert.Empty(t, s.Top)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(NewFrequencyTable(), 3)
	assert.Zero(t, s.Pixels)
	assert.Zero(t, s.Distinct)
}
