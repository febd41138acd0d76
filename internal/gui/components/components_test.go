package components

import (
	"image"
	"testing"

	"rgb-slicer/internal/colorcube"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestPixelAtScalesToImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 256, 256))
	size := fyne.NewSize(512, 512)

	x, y, ok := pixelAt(img, size, fyne.NewPos(61, 41))
	assert.True(t, ok)
	assert.Equal(t, 30, x)
	assert.Equal(t, 20, y)

	x, y, ok = pixelAt(img, size, fyne.NewPos(511.9, 511.9))
	assert.True(t, ok)
	assert.Equal(t, 255, x)
	assert.Equal(t, 255, y)

	_, _, ok = pixelAt(img, size, fyne.NewPos(-1, 3))
	assert.False(t, ok)

	_, _, ok = pixelAt(nil, size, fyne.NewPos(1, 1))
	assert.False(t, ok)
}

func TestPixelAtOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 20, 30))

	x, y, ok := pixelAt(img, fyne.NewSize(10, 10), fyne.NewPos(0, 9.5))
	assert.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 29, y)
}

func TestControlsPanelHandlers(t *testing.T) {
	test.NewTempApp(t)
	panel := NewControlsPanel()

	var gotAxis colorcube.Axis = -1
	var gotThreshold, gotSlice int
	panel.SetAxisChangeHandler(func(a colorcube.Axis) { gotAxis = a })
	panel.SetThresholdChangeHandler(func(th int) { gotThreshold = th })
	panel.SetSliceChangeHandler(func(v int) { gotSlice = v })

	panel.axisSelect.SetSelected("Blue")
	panel.thresholdSelect.SetSelected("64")
	panel.valueSlider.Value = 200
	panel.valueSlider.OnChanged(200)

	assert.Equal(t, colorcube.FixedBlue, gotAxis)
	assert.Equal(t, 64, gotThreshold)
	assert.Equal(t, 200, gotSlice)
	assert.Equal(t, "Blue value: 200", panel.valueLabel.Text)
}

func TestControlsPanelSetStateIsSilent(t *testing.T) {
	test.NewTempApp(t)
	panel := NewControlsPanel()

	fired := false
	panel.SetAxisChangeHandler(func(colorcube.Axis) { fired = true })
	panel.SetThresholdChangeHandler(func(int) { fired = true })
	panel.SetSliceChangeHandler(func(int) { fired = true })

	panel.SetState(colorcube.FixedGreen, 1024, 17)

	assert.False(t, fired)
	assert.Equal(t, colorcube.FixedGreen, panel.Axis())
	assert.Equal(t, 1024, panel.Threshold())
	assert.Equal(t, 17, panel.Value())
}
