package app

import (
	"testing"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/pipeline"

	"github.com/stretchr/testify/assert"
)

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#000000", hexColor(0, 0, 0))
	assert.Equal(t, "#ff8001", hexColor(255, 128, 1))
}

func TestReadouts(t *testing.T) {
	p := pipeline.Probe{U: 3, V: 4, R: 16, G: 32, B: 48, Count: 9}

	assert.Equal(t, "Image (3, 4): #102030  R 16 G 32 B 48  count 9", imageReadout(p))
	assert.Equal(t, "Green 7 slice (3, 4): #102030  count 9", sliceReadout(colorcube.FixedGreen, 7, p))
}

func TestStatusLines(t *testing.T) {
	imageData := &pipeline.ImageData{Name: "cat.png", Width: 640, Height: 480, Format: "png"}
	assert.Equal(t, "cat.png: 640x480 png", loadedStatus(imageData))

	set := &colorcube.SliceSet{Axis: colorcube.FixedBlue, Threshold: 64}
	assert.Equal(t, "Blue slice 12, threshold 64", slicesStatus(set, 12))
}
