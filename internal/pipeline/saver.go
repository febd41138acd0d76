package pipeline

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rgb-slicer/internal/colorcube"
	"rgb-slicer/internal/logger"
)

type Saver struct {
	logger logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{logger: log}
}

// SliceFileName names the file for one slice, e.g. slice_red_042.png.
func SliceFileName(axis colorcube.Axis, fixed int, format string) string {
	return fmt.Sprintf("slice_%s_%03d.%s", strings.ToLower(axis.String()), fixed, extension(format))
}

func (s *Saver) SaveToWriter(writer io.Writer, img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("no image data to save")
	}

	var err error
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		err = jpeg.Encode(writer, img, &jpeg.Options{Quality: 95})
	case "", "png":
		err = png.Encode(writer, img)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// SaveSlices writes the selected slices of set into dir. A nil or empty
// selection writes all of them. Returns the written paths.
func (s *Saver) SaveSlices(dir string, set *colorcube.SliceSet, values []int, format string) ([]string, error) {
	if set == nil {
		return nil, fmt.Errorf("no slices to save")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if len(values) == 0 {
		values = make([]int, colorcube.SliceCount)
		for i := range values {
			values[i] = i
		}
	}

	written := make([]string, 0, len(values))
	for _, fixed := range values {
		slice, ok := set.Select(fixed)
		if !ok {
			s.logger.Warning("ImageSaver", "skipping out of range slice", map[string]interface{}{
				"value": fixed,
			})
			continue
		}

		path := filepath.Join(dir, SliceFileName(set.Axis, fixed, format))
		if err := s.saveFile(path, slice, format); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	s.logger.Info("ImageSaver", "slices saved", map[string]interface{}{
		"dir":   dir,
		"count": len(written),
		"axis":  set.Axis.String(),
	})
	return written, nil
}

func (s *Saver) saveFile(path string, img image.Image, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := s.SaveToWriter(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func extension(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "jpg"
	default:
		return "png"
	}
}
