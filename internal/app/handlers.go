package app

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/config"
	"rgb-slicer/internal/logger"
	"rgb-slicer/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// view is the part of the GUI the handlers drive. Implementations must be
// safe to call from any goroutine.
type view interface {
	GetWindow() fyne.Window
	SetSourceImage(img image.Image)
	SetSliceImage(img image.Image)
	SetControlState(axis colorcube.Axis, threshold, value int)
	UpdateStatus(status string)
	SetBusy(busy bool)
	SetImageReadout(text string)
	SetSliceReadout(text string)
	ShowError(title string, err error)
}

// Handlers turns GUI events into coordinator calls. Loads and renders run
// off the UI goroutine; a new render cancels the one in flight.
type Handlers struct {
	ctx         context.Context
	coordinator *pipeline.Coordinator
	view        view
	logger      logger.Logger

	mu           sync.Mutex
	cfg          *config.Config
	axis         colorcube.Axis
	threshold    int
	value        int
	cancelRender context.CancelFunc

	pending sync.WaitGroup
}

func NewHandlers(ctx context.Context, coord *pipeline.Coordinator, v view, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		ctx:         ctx,
		coordinator: coord,
		view:        v,
		logger:      log,
		cfg:         cfg,
		axis:        cfg.Render.Axis,
		threshold:   cfg.Render.Threshold,
	}
}

// HandleImageLoad shows the open dialog, starting in the last directory an
// image was loaded from.
func (h *Handlers) HandleImageLoad() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.view.ShowError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		uri := reader.URI()
		h.load(func() (io.ReadCloser, error) {
			return reader, nil
		}, uri.Name(), filepath.Dir(uri.Path()))
	}, h.view.GetWindow())

	fileDialog.SetFilter(storage.NewExtensionFileFilter(pipeline.SupportedExtensions))

	if dir := h.lastDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fileDialog.SetLocation(lister)
		} else {
			h.logger.Debug("Handlers", "last directory unavailable", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
		}
	}

	fileDialog.Show()
}

// LoadPath loads an image from disk without a dialog.
func (h *Handlers) LoadPath(path string) {
	h.load(func() (io.ReadCloser, error) {
		return os.Open(path)
	}, filepath.Base(path), filepath.Dir(path))
}

func (h *Handlers) load(open func() (io.ReadCloser, error), name, dir string) {
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()

		reader, err := open()
		if err != nil {
			h.view.ShowError("File Open Error", err)
			return
		}
		defer reader.Close()

		h.view.SetBusy(true)
		h.view.UpdateStatus("Loading " + name + "...")

		imageData, err := h.coordinator.LoadImage(h.ctx, reader, name)
		if err != nil {
			h.view.SetBusy(false)
			h.view.UpdateStatus("Ready")
			h.view.ShowError("Image Load Error", err)
			return
		}

		h.mu.Lock()
		h.cfg.UI.LastDir = dir
		h.mu.Unlock()

		h.view.SetSourceImage(imageData.Image)
		h.view.SetImageReadout("")
		h.view.SetSliceReadout("")
		h.view.UpdateStatus(loadedStatus(imageData))

		h.render()
	}()
}

func (h *Handlers) HandleAxisChange(axis colorcube.Axis) {
	h.mu.Lock()
	h.axis = axis
	h.cfg.Render.Axis = axis
	h.mu.Unlock()

	h.startRender()
}

func (h *Handlers) HandleThresholdChange(threshold int) {
	h.mu.Lock()
	h.threshold = colorcube.ClampThreshold(threshold)
	h.cfg.Render.Threshold = h.threshold
	h.mu.Unlock()

	h.startRender()
}

// HandleSliceChange only swaps the displayed slice; nothing is regenerated.
func (h *Handlers) HandleSliceChange(value int) {
	if value < 0 || value >= colorcube.SliceCount {
		return
	}

	h.mu.Lock()
	h.value = value
	h.mu.Unlock()

	slice, ok := h.coordinator.SelectSlice(value)
	if !ok {
		return
	}

	h.view.SetSliceImage(slice)
	if set := h.coordinator.Slices(); set != nil {
		h.view.UpdateStatus(slicesStatus(set, value))
	}
}

func (h *Handlers) HandleImageHover(x, y int) {
	probe, err := h.coordinator.SamplePixel(x, y)
	if err != nil {
		return
	}
	h.view.SetImageReadout(imageReadout(probe))
}

func (h *Handlers) HandleSliceHover(u, v int) {
	if h.coordinator.Slices() == nil {
		return
	}

	probe, err := h.coordinator.Probe(u, v)
	if err != nil {
		return
	}
	h.view.SetSliceReadout(sliceReadout(h.coordinator.Axis(), h.coordinator.Selected(), probe))
}

func (h *Handlers) startRender() {
	if h.coordinator.Image() == nil {
		return
	}

	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		h.render()
	}()
}

// render regenerates the slice set with the current axis and threshold and
// shows the selected slice.
func (h *Handlers) render() {
	h.mu.Lock()
	if h.cancelRender != nil {
		h.cancelRender()
	}
	ctx, cancel := context.WithCancel(h.ctx)
	h.cancelRender = cancel
	axis, threshold, value := h.axis, h.threshold, h.value
	h.mu.Unlock()
	defer cancel()

	h.view.SetBusy(true)
	set, err := h.coordinator.Regenerate(ctx, axis, threshold)
	if errors.Is(err, context.Canceled) {
		return
	}
	h.view.SetBusy(false)
	if err != nil {
		h.view.ShowError("Slice Generation Error", err)
		return
	}

	h.mu.Lock()
	value = h.value
	h.mu.Unlock()

	slice, ok := h.coordinator.SelectSlice(value)
	if !ok {
		return
	}

	h.view.SetControlState(set.Axis, set.Threshold, value)
	h.view.SetSliceImage(slice)
	h.view.UpdateStatus(slicesStatus(set, value))
}

func (h *Handlers) lastDir() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg.UI.LastDir
}

// Wait blocks until outstanding loads and renders finish.
func (h *Handlers) Wait() {
	h.pending.Wait()
}

// Shutdown cancels any render in flight and waits for background work.
func (h *Handlers) Shutdown() {
	h.mu.Lock()
	if h.cancelRender != nil {
		h.cancelRender()
	}
	h.mu.Unlock()

	h.Wait()
}
