package colorcube

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColorCount pairs a packed key with its count.
type ColorCount struct {
	Key   uint32
	Count uint32
}

// RGB unpacks the key.
func (c ColorCount) RGB() (r, g, b uint8) {
	return uint8(c.Key), uint8(c.Key >> 8), uint8(c.Key >> 16)
}

// Summary describes the populated part of a frequency table.
type Summary struct {
	Pixels      uint64
	Distinct    int
	MaxCount    uint32
	MeanCount   float64
	StdDevCount float64
	// EntropyBits is the Shannon entropy of the color distribution.
	EntropyBits float64
	Top         []ColorCount
}

// Summarize computes statistics over the non-zero entries of t and keeps the
// topN most frequent colors, ties broken by ascending key.
func Summarize(t *FrequencyTable, topN int) Summary {
	s := Summary{Pixels: t.Total()}
	if s.Pixels == 0 {
		return s
	}

	counts := make([]float64, 0, 1024)
	populated := make([]ColorCount, 0, 1024)
	t.NonZero(func(key, count uint32) {
		counts = append(counts, float64(count))
		populated = append(populated, ColorCount{Key: key, Count: count})
	})

	s.Distinct = len(counts)
	s.MaxCount = uint32(floats.Max(counts))
	s.MeanCount, s.StdDevCount = stat.MeanStdDev(counts, nil)
	if s.Distinct == 1 {
		s.StdDevCount = 0
	}

	probs := make([]float64, len(counts))
	floats.ScaleTo(probs, 1/float64(s.Pixels), counts)
	s.EntropyBits = stat.Entropy(probs) / math.Ln2

	if topN > 0 {
		sort.SliceStable(populated, func(i, j int) bool {
			return populated[i].Count > populated[j].Count
		})
		s.Top = populated[:min(topN, len(populated))]
	}
	return s
}
