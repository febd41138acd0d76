package colorcube

import (
	"math"
	"strconv"
)

const (
	MinThreshold     = 1
	MaxThreshold     = 8192
	DefaultThreshold = 1
)

// ThresholdLevels are the power-of-two thresholds offered to users.
var ThresholdLevels = func() []int {
	levels := make([]int, 0, 14)
	for t := MinThreshold; t <= MaxThreshold; t <<= 1 {
		levels = append(levels, t)
	}
	return levels
}()

// ClampThreshold forces t into [MinThreshold, MaxThreshold].
func ClampThreshold(t int) int {
	return max(MinThreshold, min(t, MaxThreshold))
}

// ThresholdLabels renders ThresholdLevels for select widgets.
func ThresholdLabels() []string {
	labels := make([]string, len(ThresholdLevels))
	for i, t := range ThresholdLevels {
		labels[i] = strconv.Itoa(t)
	}
	return labels
}

// Intensity maps a frequency to a gray level. Counts at or above threshold
// saturate to white; rarer colors ramp linearly from black.
func Intensity(freq uint32, threshold int) uint8 {
	t := ClampThreshold(threshold)
	if uint64(freq) >= uint64(t) {
		return 255
	}
	level := 1 - float64(t-int(freq))/float64(t)
	level = math.Max(0, math.Min(level, 1))
	return uint8(level * 255)
}

// intensityTable precomputes Intensity for every count below threshold.
func intensityTable(threshold int) []uint8 {
	t := ClampThreshold(threshold)
	lut := make([]uint8, t)
	for f := range lut {
		lut[f] = Intensity(uint32(f), t)
	}
	return lut
}
