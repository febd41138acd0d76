package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the general status plus the two cursor read-outs.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageLabel  *widget.Label
	sliceLabel  *widget.Label
	progress    *widget.ProgressBarInfinite
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Open an image to begin")
	imageLabel := widget.NewLabel("")
	sliceLabel := widget.NewLabel("")

	progress := widget.NewProgressBarInfinite()
	progress.Stop()
	progress.Hide()

	readouts := container.NewHBox(
		imageLabel,
		widget.NewSeparator(),
		sliceLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		container.NewHBox(statusLabel, progress),
		readouts,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		imageLabel:  imageLabel,
		sliceLabel:  sliceLabel,
		progress:    progress,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetImageReadout(text string) {
	sb.imageLabel.SetText(text)
}

func (sb *StatusBar) SetSliceReadout(text string) {
	sb.sliceLabel.SetText(text)
}

func (sb *StatusBar) SetBusy(busy bool) {
	if busy {
		sb.progress.Show()
		sb.progress.Start()
		return
	}
	sb.progress.Stop()
	sb.progress.Hide()
}
