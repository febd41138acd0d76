package gui

import (
	"image"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/gui/components"
	"rgb-slicer/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

// Manager owns the widgets and routes their events to handlers set by the
// application. Setters that touch widgets hop onto the UI goroutine.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	imageDisplay  *components.ImageDisplay
	controlsPanel *components.ControlsPanel
	statusBar     *components.StatusBar

	imageLoadHandler func()
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	manager := &Manager{
		window:        window,
		logger:        log,
		imageDisplay:  components.NewImageDisplay(),
		controlsPanel: components.NewControlsPanel(),
		statusBar:     components.NewStatusBar(),
	}

	manager.controlsPanel.SetEnabled(false)
	manager.setupMenu()

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"slice_size": components.SliceDisplaySize,
	})

	return manager
}

func (m *Manager) setupMenu() {
	openItem := fyne.NewMenuItem("Open image file", m.onImageLoad)
	openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}

	m.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", openItem)))
	m.window.Canvas().AddShortcut(openItem.Shortcut, func(fyne.Shortcut) {
		m.onImageLoad()
	})
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	histogramSide := container.NewVBox(
		m.imageDisplay.SliceContainer(),
		m.controlsPanel.GetContainer(),
	)

	split := container.NewHSplit(
		m.imageDisplay.SourceContainer(),
		container.NewPadded(histogramSide),
	)
	split.SetOffset(0.6)

	return container.NewBorder(nil, m.statusBar.GetContainer(), nil, nil, split)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetImageLoadHandler(handler func()) {
	m.imageLoadHandler = handler
	m.controlsPanel.SetImageLoadHandler(m.onImageLoad)
}

func (m *Manager) SetSliceChangeHandler(handler func(int)) {
	m.controlsPanel.SetSliceChangeHandler(handler)
}

func (m *Manager) SetAxisChangeHandler(handler func(colorcube.Axis)) {
	m.controlsPanel.SetAxisChangeHandler(func(axis colorcube.Axis) {
		m.logger.Debug("GUIManager", "axis change requested", map[string]interface{}{
			"axis": axis.String(),
		})
		handler(axis)
	})
}

func (m *Manager) SetThresholdChangeHandler(handler func(int)) {
	m.controlsPanel.SetThresholdChangeHandler(func(threshold int) {
		m.logger.Debug("GUIManager", "threshold change requested", map[string]interface{}{
			"threshold": threshold,
		})
		handler(threshold)
	})
}

func (m *Manager) SetImageHoverHandler(onHover func(x, y int)) {
	m.imageDisplay.SetSourceHoverHandler(onHover, func() {
		m.statusBar.SetImageReadout("")
	})
}

func (m *Manager) SetSliceHoverHandler(onHover func(u, v int)) {
	m.imageDisplay.SetSliceHoverHandler(onHover, func() {
		m.statusBar.SetSliceReadout("")
	})
}

func (m *Manager) SetSourceImage(img image.Image) {
	fyne.Do(func() {
		m.imageDisplay.SetSourceImage(img)
		m.controlsPanel.SetEnabled(true)
	})
}

func (m *Manager) SetSliceImage(img image.Image) {
	fyne.Do(func() {
		m.imageDisplay.SetSliceImage(img)
	})
}

// InitControls sets the control state directly. Call it on the UI goroutine
// before the window is shown.
func (m *Manager) InitControls(axis colorcube.Axis, threshold int) {
	m.controlsPanel.SetState(axis, threshold, 0)
}

func (m *Manager) SetControlState(axis colorcube.Axis, threshold, value int) {
	fyne.Do(func() {
		m.controlsPanel.SetState(axis, threshold, value)
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.statusBar.SetStatus(status)
	})
}

func (m *Manager) SetBusy(busy bool) {
	fyne.Do(func() {
		m.statusBar.SetBusy(busy)
	})
}

func (m *Manager) SetImageReadout(text string) {
	fyne.Do(func() {
		m.statusBar.SetImageReadout(text)
	})
}

func (m *Manager) SetSliceReadout(text string) {
	fyne.Do(func() {
		m.statusBar.SetSliceReadout(text)
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) onImageLoad() {
	if m.imageLoadHandler != nil {
		m.imageLoadHandler()
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
