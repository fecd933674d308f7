package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	startQuality = 70
	minQuality   = 20
	qualityStep  = 10

	// Below this quality the image is also downscaled if still wide.
	scaleQualityThreshold = 40
	scaleMinWidth         = 600
	scaleFactor           = 0.7
)

// Compress re-encodes an image as JPEG, stepping quality down and
// shrinking the frame until it fits under maxBytes. When the floor is
// reached the smallest result is returned even if it is still over the
// cap; the caller decides whether that is acceptable.
func Compress(data []byte, maxBytes int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var out []byte
	for quality := startQuality; quality >= minQuality; quality -= qualityStep {
		if quality <= scaleQualityThreshold && img.Bounds().Dx() > scaleMinWidth {
			img = scale(img, scaleFactor)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}

		out = buf.Bytes()
		if len(out) <= maxBytes {
			return out, nil
		}
	}

	return out, nil
}

func scale(img image.Image, factor float64) image.Image {
	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * factor)
	height := int(float64(bounds.Dy()) * factor)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
