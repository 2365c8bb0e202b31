package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// maxModelDimension is the largest edge length passed to the vision model.
// Larger photos cost tokens without improving recognition of problem text.
const maxModelDimension = 1024

// ScaleForModel reads an uploaded image and returns JPEG bytes sized for the
// model. Images already within bounds are only re-encoded.
func ScaleForModel(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxModelDimension || height > maxModelDimension {
		ratio := float64(maxModelDimension) / float64(width)
		if height > width {
			ratio = float64(maxModelDimension) / float64(height)
		}
		scaledWidth := int(float64(width) * ratio)
		scaledHeight := int(float64(height) * ratio)

		dst := image.NewRGBA(image.Rect(0, 0, scaledWidth, scaledHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
