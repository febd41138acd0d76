package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestMatToRGBASwapsChannels(t *testing.T) {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(30, 20, 10, 0), 2, 3, gocv.MatTypeCV8UC3)
	defer mat.Close()

	img, err := MatToRGBA(mat)
	require.NoError(t, err)

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	c := img.RGBAAt(2, 1)
	assert.Equal(t, [4]uint8{10, 20, 30, 255}, [4]uint8{c.R, c.G, c.B, c.A})
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"))
	assert.Error(t, err)
}
