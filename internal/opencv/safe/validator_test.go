package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(1, 1, "test"))
	assert.NoError(t, ValidateDimensions(MaxDimension, 10, "test"))
	assert.Error(t, ValidateDimensions(0, 10, "test"))
	assert.Error(t, ValidateDimensions(10, -1, "test"))
	assert.Error(t, ValidateDimensions(MaxDimension+1, 10, "test"))
}

func TestValidateMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, ValidateMat(empty, "decode"))

	mat := gocv.NewMatWithSize(4, 3, gocv.MatTypeCV8UC3)
	defer mat.Close()
	assert.NoError(t, ValidateMat(mat, "decode"))
	assert.NoError(t, ValidateMatType(mat.Type(), "decode"))
	assert.Error(t, ValidateMatType(gocv.MatTypeCV32FC1, "decode"))
}
