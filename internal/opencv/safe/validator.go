package safe

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MaxDimension bounds either side of a decoded image.
const MaxDimension = 32768

func ValidateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	return ValidateDimensions(mat.Cols(), mat.Rows(), operation)
}

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}

// ValidateMatType accepts the 8-bit layouts the RGBA conversion reads.
func ValidateMatType(matType gocv.MatType, operation string) error {
	switch matType {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3:
		return nil
	default:
		return fmt.Errorf("unsupported Mat type %v for operation: %s", matType, operation)
	}
}
