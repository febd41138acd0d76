package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// HoverImage shows an image stretched over its size and reports which image
// pixel is under the mouse.
type HoverImage struct {
	widget.BaseWidget
	image   *canvas.Image
	onHover func(x, y int)
	onLeave func()
}

func NewHoverImage(minSize fyne.Size) *HoverImage {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(minSize)

	h := &HoverImage{image: img}
	h.ExtendBaseWidget(h)
	return h
}

func (h *HoverImage) SetImage(img image.Image) {
	h.image.Image = img
	h.image.Refresh()
}

func (h *HoverImage) Image() image.Image {
	return h.image.Image
}

func (h *HoverImage) SetMinSize(size fyne.Size) {
	h.image.SetMinSize(size)
	h.Refresh()
}

func (h *HoverImage) SetHoverHandler(onHover func(x, y int), onLeave func()) {
	h.onHover = onHover
	h.onLeave = onLeave
}

// PixelAt maps a widget position to image pixel coordinates.
func (h *HoverImage) PixelAt(pos fyne.Position) (int, int, bool) {
	return pixelAt(h.image.Image, h.Size(), pos)
}

func pixelAt(img image.Image, size fyne.Size, pos fyne.Position) (int, int, bool) {
	if img == nil || size.Width <= 0 || size.Height <= 0 {
		return 0, 0, false
	}
	if pos.X < 0 || pos.Y < 0 || pos.X >= size.Width || pos.Y >= size.Height {
		return 0, 0, false
	}

	bounds := img.Bounds()
	x := int(pos.X / size.Width * float32(bounds.Dx()))
	y := int(pos.Y / size.Height * float32(bounds.Dy()))
	x = min(x, bounds.Dx()-1)
	y = min(y, bounds.Dy()-1)
	return bounds.Min.X + x, bounds.Min.Y + y, true
}

func (h *HoverImage) MouseIn(ev *desktop.MouseEvent) {
	h.MouseMoved(ev)
}

func (h *HoverImage) MouseMoved(ev *desktop.MouseEvent) {
	x, y, ok := h.PixelAt(ev.Position)
	if !ok {
		return
	}
	if h.onHover != nil {
		h.onHover(x, y)
	}
}

func (h *HoverImage) MouseOut() {
	if h.onLeave != nil {
		h.onLeave()
	}
}

func (h *HoverImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.image)
}
