package components

import (
	"fmt"
	"strconv"

	"rgb-slicer/internal/colorcube"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ControlsPanel carries the slice slider, the axis selector and the
// threshold selector.
type ControlsPanel struct {
	container       *fyne.Container
	valueLabel      *widget.Label
	valueSlider     *widget.Slider
	axisSelect      *widget.Select
	thresholdSelect *widget.Select
	openButton      *widget.Button

	// suppress keeps programmatic updates from firing handlers.
	suppress bool

	imageLoadHandler       func()
	sliceChangeHandler     func(int)
	axisChangeHandler      func(colorcube.Axis)
	thresholdChangeHandler func(int)
}

func NewControlsPanel() *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	cp.openButton = widget.NewButton("Open Image", cp.onImageLoad)
	cp.openButton.Importance = widget.HighImportance

	cp.valueLabel = widget.NewLabel(valueText(colorcube.FixedRed, 0))
	cp.valueSlider = widget.NewSlider(0, colorcube.SliceCount-1)
	cp.valueSlider.Step = 1
	cp.valueSlider.OnChanged = cp.onSliderChanged

	axisNames := make([]string, len(colorcube.Axes))
	for i, a := range colorcube.Axes {
		axisNames[i] = a.String()
	}
	cp.axisSelect = widget.NewSelect(axisNames, cp.onAxisSelected)

	cp.thresholdSelect = widget.NewSelect(colorcube.ThresholdLabels(), cp.onThresholdSelected)

	cp.suppressed(func() {
		cp.axisSelect.SetSelected(colorcube.FixedRed.String())
		cp.thresholdSelect.SetSelected(strconv.Itoa(colorcube.DefaultThreshold))
	})

	cp.container = container.NewVBox(
		cp.openButton,
		widget.NewSeparator(),
		cp.valueLabel,
		cp.valueSlider,
		widget.NewLabel("Color slice:"),
		cp.axisSelect,
		widget.NewLabel("Threshold:"),
		cp.thresholdSelect,
	)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *ControlsPanel) SetImageLoadHandler(handler func()) {
	cp.imageLoadHandler = handler
}

func (cp *ControlsPanel) SetSliceChangeHandler(handler func(int)) {
	cp.sliceChangeHandler = handler
}

func (cp *ControlsPanel) SetAxisChangeHandler(handler func(colorcube.Axis)) {
	cp.axisChangeHandler = handler
}

func (cp *ControlsPanel) SetThresholdChangeHandler(handler func(int)) {
	cp.thresholdChangeHandler = handler
}

// SetState updates the widgets without firing any handler.
func (cp *ControlsPanel) SetState(axis colorcube.Axis, threshold, value int) {
	cp.suppressed(func() {
		cp.axisSelect.SetSelected(axis.String())
		cp.thresholdSelect.SetSelected(strconv.Itoa(threshold))
		cp.valueSlider.SetValue(float64(value))
		cp.valueLabel.SetText(valueText(axis, value))
	})
}

func (cp *ControlsPanel) SetEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{cp.axisSelect, cp.thresholdSelect} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (cp *ControlsPanel) Axis() colorcube.Axis {
	a, err := colorcube.ParseAxis(cp.axisSelect.Selected)
	if err != nil {
		return colorcube.FixedRed
	}
	return a
}

func (cp *ControlsPanel) Threshold() int {
	t, err := strconv.Atoi(cp.thresholdSelect.Selected)
	if err != nil {
		return colorcube.DefaultThreshold
	}
	return t
}

func (cp *ControlsPanel) Value() int {
	return int(cp.valueSlider.Value)
}

func (cp *ControlsPanel) suppressed(fn func()) {
	cp.suppress = true
	defer func() { cp.suppress = false }()
	fn()
}

func (cp *ControlsPanel) onImageLoad() {
	if cp.imageLoadHandler != nil {
		cp.imageLoadHandler()
	}
}

func (cp *ControlsPanel) onSliderChanged(value float64) {
	cp.valueLabel.SetText(valueText(cp.Axis(), int(value)))
	if cp.suppress || cp.sliceChangeHandler == nil {
		return
	}
	cp.sliceChangeHandler(int(value))
}

func (cp *ControlsPanel) onAxisSelected(name string) {
	if cp.valueLabel != nil {
		cp.valueLabel.SetText(valueText(cp.Axis(), cp.Value()))
	}
	if cp.suppress || cp.axisChangeHandler == nil {
		return
	}
	axis, err := colorcube.ParseAxis(name)
	if err != nil {
		return
	}
	cp.axisChangeHandler(axis)
}

func (cp *ControlsPanel) onThresholdSelected(label string) {
	if cp.suppress || cp.thresholdChangeHandler == nil {
		return
	}
	t, err := strconv.Atoi(label)
	if err != nil {
		return
	}
	cp.thresholdChangeHandler(t)
}

func valueText(axis colorcube.Axis, value int) string {
	return fmt.Sprintf("%s value: %d", axis, value)
}
