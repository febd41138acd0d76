package app

import (
	"fmt"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/pipeline"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func hexColor(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

func imageReadout(p pipeline.Probe) string {
	return fmt.Sprintf("Image (%d, %d): %s  R %d G %d B %d  count %d",
		p.U, p.V, hexColor(p.R, p.G, p.B), p.R, p.G, p.B, p.Count)
}

func sliceReadout(axis colorcube.Axis, fixed int, p pipeline.Probe) string {
	return fmt.Sprintf("%s %d slice (%d, %d): %s  count %d",
		axis, fixed, p.U, p.V, hexColor(p.R, p.G, p.B), p.Count)
}

func loadedStatus(imageData *pipeline.ImageData) string {
	return fmt.Sprintf("%s: %dx%d %s", imageData.Name, imageData.Width, imageData.Height, imageData.Format)
}

func slicesStatus(set *colorcube.SliceSet, fixed int) string {
	return fmt.Sprintf("%s slice %d, threshold %d", set.Axis, fixed, set.Threshold)
}
