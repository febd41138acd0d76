package colorcube

import (
	"image"
	"image/color"
)

// TableSize is the number of distinct 24-bit colors.
const TableSize = 1 << 24

// Key packs a color as BBBBBBBB GGGGGGGG RRRRRRRR.
func Key(r, g, b uint8) uint32 {
	return uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// FrequencyTable holds an occurrence count for every 24-bit color.
type FrequencyTable struct {
	counts []uint32
	total  uint64
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make([]uint32, TableSize)}
}

// Build resets the table and counts every pixel of img. A nil or empty image
// leaves the table zeroed.
func (t *FrequencyTable) Build(img image.Image) {
	clear(t.counts)
	t.total = 0

	if img == nil {
		return
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return
	}

	switch src := img.(type) {
	case *image.NRGBA:
		t.countNRGBA(src)
	case *image.RGBA:
		t.countRGBA(src)
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				t.counts[Key(c.R, c.G, c.B)]++
			}
		}
	}

	t.total = uint64(bounds.Dx()) * uint64(bounds.Dy())
}

func (t *FrequencyTable) countNRGBA(src *image.NRGBA) {
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			t.counts[Key(row[i], row[i+1], row[i+2])]++
		}
	}
}

// Premultiplied pixels with partial alpha go through the color model so
// the stored channels match the non-premultiplied values.
func (t *FrequencyTable) countRGBA(src *image.RGBA) {
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0xff {
				t.counts[Key(row[i], row[i+1], row[i+2])]++
				continue
			}
			c := color.NRGBAModel.Convert(color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}).(color.NRGBA)
			t.counts[Key(c.R, c.G, c.B)]++
		}
	}
}

func (t *FrequencyTable) Lookup(r, g, b uint8) uint32 {
	return t.counts[Key(r, g, b)]
}

// LookupKey reads a packed key; only the low 24 bits are used.
func (t *FrequencyTable) LookupKey(key uint32) uint32 {
	return t.counts[key&(TableSize-1)]
}

// Total returns the number of pixels counted by the last Build.
func (t *FrequencyTable) Total() uint64 {
	return t.total
}

// Distinct returns the number of colors with a non-zero count.
func (t *FrequencyTable) Distinct() int {
	n := 0
	for _, c := range t.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// NonZero calls fn for every populated key in ascending key order.
func (t *FrequencyTable) NonZero(fn func(key, count uint32)) {
	for k, c := range t.counts {
		if c != 0 {
			fn(uint32(k), c)
		}
	}
}
