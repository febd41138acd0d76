package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ScrollViewportWidth  = 384
	ScrollViewportHeight = 256
	SliceDisplaySize     = 256
)

// ImageDisplay holds the source image in a scroll area on the left and the
// current slice on the right.
type ImageDisplay struct {
	sourceContainer *fyne.Container
	sliceContainer  *fyne.Container
	sourceImage     *HoverImage
	sliceImage      *HoverImage
	scrollContainer *container.Scroll
}

func NewImageDisplay() *ImageDisplay {
	sourceImage := NewHoverImage(fyne.NewSize(ScrollViewportWidth, ScrollViewportHeight))
	sliceImage := NewHoverImage(fyne.NewSize(SliceDisplaySize, SliceDisplaySize))

	scrollContainer := container.NewScroll(sourceImage)
	scrollContainer.SetMinSize(fyne.NewSize(ScrollViewportWidth, ScrollViewportHeight))

	sourceContainer := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Image**"), nil, nil, nil,
		scrollContainer,
	)

	sliceContainer := container.NewVBox(
		widget.NewRichTextFromMarkdown("**Color slice**"),
		container.NewCenter(sliceImage),
	)

	return &ImageDisplay{
		sourceContainer: sourceContainer,
		sliceContainer:  sliceContainer,
		sourceImage:     sourceImage,
		sliceImage:      sliceImage,
		scrollContainer: scrollContainer,
	}
}

func (id *ImageDisplay) SourceContainer() *fyne.Container {
	return id.sourceContainer
}

func (id *ImageDisplay) SliceContainer() *fyne.Container {
	return id.sliceContainer
}

func (id *ImageDisplay) SetSourceImage(img image.Image) {
	if img == nil {
		return
	}

	bounds := img.Bounds()
	id.sourceImage.SetImage(img)
	id.sourceImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	id.scrollContainer.ScrollToTop()
}

func (id *ImageDisplay) SetSliceImage(img image.Image) {
	if img == nil {
		return
	}
	id.sliceImage.SetImage(img)
}

func (id *ImageDisplay) SetSourceHoverHandler(onHover func(x, y int), onLeave func()) {
	id.sourceImage.SetHoverHandler(onHover, onLeave)
}

func (id *ImageDisplay) SetSliceHoverHandler(onHover func(u, v int), onLeave func()) {
	id.sliceImage.SetHoverHandler(onHover, onLeave)
}
