package conversion

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"rgb-slicer/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var ErrEmptyMat = errors.New("decoded Mat is empty")

// DecodeImage decodes encoded image bytes with OpenCV and returns them as an
// opaque RGBA image. It covers formats the Go decoders do not register.
func DecodeImage(data []byte) (*image.RGBA, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("OpenCV decode failed: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, ErrEmptyMat
	}

	return MatToRGBA(mat)
}

// MatToRGBA converts an 8-bit BGR or gray Mat.
func MatToRGBA(mat gocv.Mat) (*image.RGBA, error) {
	if err := safe.ValidateMat(mat, "MatToRGBA"); err != nil {
		return nil, err
	}
	if err := safe.ValidateMatType(mat.Type(), "MatToRGBA"); err != nil {
		return nil, err
	}

	rows, cols := mat.Rows(), mat.Cols()

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	switch mat.Type() {
	case gocv.MatTypeCV8UC3:
		data := mat.ToBytes()
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				i := (y*cols + x) * 3
				img.SetRGBA(x, y, color.RGBA{R: data[i+2], G: data[i+1], B: data[i], A: 255})
			}
		}
	case gocv.MatTypeCV8UC1:
		data := mat.ToBytes()
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				v := data[y*cols+x]
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
	}

	return img, nil
}
