package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestScaleForModel_SmallImageKeepsSize(t *testing.T) {
	out, err := ScaleForModel(encodePNG(t, 640, 480))
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestScaleForModel_WideImageScalesToBound(t *testing.T) {
	out, err := ScaleForModel(encodePNG(t, 2048, 1024))
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestScaleForModel_TallImageScalesToBound(t *testing.T) {
	out, err := ScaleForModel(encodePNG(t, 600, 3000))
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 1024, img.Bounds().Dy())
	assert.LessOrEqual(t, img.Bounds().Dx(), 1024)
}

func TestScaleForModel_RejectsGarbage(t *testing.T) {
	_, err := ScaleForModel(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
