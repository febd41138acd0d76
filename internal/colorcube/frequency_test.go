package colorcube

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func sumCounts(t *FrequencyTable) uint64 {
	var sum uint64
	t.NonZero(func(_, count uint32) {
		sum += uint64(count)
	})
	return sum
}

func TestKeyPacking(t *testing.T) {
	assert.Equal(t, uint32(30<<16|20<<8|10), Key(10, 20, 30))
	assert.Equal(t, uint32(0xffffff), Key(255, 255, 255))
	assert.Equal(t, uint32(0), Key(0, 0, 0))
}

func TestBuildSinglePixel(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(filledNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))

	assert.Equal(t, uint32(1), table.LookupKey(30<<16|20<<8|10))
	assert.Equal(t, uint32(1), table.Lookup(10, 20, 30))
	assert.Equal(t, 1, table.Distinct())
	assert.Equal(t, uint64(1), table.Total())
}

func TestBuildIdenticalPixels(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(filledNRGBA(2, 2, color.NRGBA{R: 5, G: 5, B: 5, A: 255}))

	assert.Equal(t, uint32(4), table.Lookup(5, 5, 5))
	assert.Equal(t, 1, table.Distinct())
	assert.Zero(t, table.Lookup(5, 5, 6))
	assert.Zero(t, table.Lookup(0, 0, 0))
}

func TestBuildSumMatchesPixelCount(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nrgba", noiseNRGBA(37, 23)},
		{"rgba", noiseRGBA(16, 9)},
		{"gray", noiseGray(31, 17)},
		{"offset bounds", noiseNRGBA(40, 40).SubImage(image.Rect(5, 7, 33, 21))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewFrequencyTable()
			table.Build(tt.img)

			b := tt.img.Bounds()
			want := uint64(b.Dx() * b.Dy())
			assert.Equal(t, want, sumCounts(table))
			assert.Equal(t, want, table.Total())
		})
	}
}

func TestBuildEmptyImage(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(image.NewNRGBA(image.Rect(0, 0, 0, 10)))

	assert.Zero(t, table.Total())
	assert.Zero(t, table.Distinct())

	table.Build(nil)
	assert.Zero(t, table.Total())
}

func TestBuildResetsPreviousImage(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(filledNRGBA(3, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))
	require.Equal(t, uint32(9), table.Lookup(1, 2, 3))

	table.Build(filledNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255}))
	assert.Zero(t, table.Lookup(1, 2, 3))
	assert.Equal(t, uint32(2), table.Lookup(200, 100, 50))
	assert.Equal(t, uint64(2), sumCounts(table))
}

func TestBuildIgnoresAlpha(t *testing.T) {
	table := NewFrequencyTable()
	table.Build(filledNRGBA(2, 2, color.NRGBA{R: 90, G: 60, B: 30, A: 128}))
	assert.Equal(t, uint32(4), table.Lookup(90, 60, 30))

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 50, G: 25, B: 0, A: 127})
	table.Build(rgba)
	want := color.NRGBAModel.Convert(color.RGBA{R: 50, G: 25, B: 0, A: 127}).(color.NRGBA)
	assert.Equal(t, uint32(1), table.Lookup(want.R, want.G, want.B))
}

func TestBuildUniformGradient(t *testing.T) {
	const height = 4
	img := image.NewNRGBA(image.Rect(0, 0, 256, height))
	for y := 0; y < height; y++ {
		for x := 0; x < 256; x++ {
			img.SetNRGBA(x, y, color.NRGBA{G: uint8(x), A: 255})
		}
	}

	table := NewFrequencyTable()
	table.Build(img)

	assert.Equal(t, 256, table.Distinct())
	table.NonZero(func(key, count uint32) {
		assert.Equal(t, uint32(height), count)
		assert.Zero(t, key&0xff0000, "blue must stay zero")
		assert.Zero(t, key&0x0000ff, "red must stay zero")
	})
}

func noiseNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func noiseRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func noiseGray(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 31)
	}
	return img
}
