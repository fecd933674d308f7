package imagex_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"adstudio-backend/internal/imagex"
)

func testImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress_FitsUnderCap(t *testing.T) {
	data := testImage(t, 200, 200)

	out, err := imagex.Compress(data, 1_000_000)

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.LessOrEqual(t, len(out), 1_000_000)
}

func TestCompress_ReturnsSmallestWhenCapUnreachable(t *testing.T) {
	data := testImage(t, 800, 600)

	// One byte is impossible; the loop must still terminate and hand
	// back its smallest attempt.
	out, err := imagex.Compress(data, 1)

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestCompress_InvalidData(t *testing.T) {
	_, err := imagex.Compress([]byte("not an image"), 1_000_000)

	assert.Error(t, err)
}
