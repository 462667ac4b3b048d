package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// grid builds a 2x3 test image with a distinct color per pixel so the
// orientation mapping can be checked exactly.
func grid(t *testing.T) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	colors := []color.NRGBA{
		{R: 10, A: 255}, {R: 20, A: 255},
		{R: 30, A: 255}, {R: 40, A: 255},
		{R: 50, A: 255}, {R: 60, A: 255},
	}
	i := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, colors[i])
			i++
		}
	}
	return img
}

func TestCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, red)
	img.SetNRGBA(2, 2, green)

	cropped := Crop(img, image.Rect(1, 1, 3, 3))
	require.Equal(t, 2, cropped.Bounds().Dx())
	require.Equal(t, 2, cropped.Bounds().Dy())
	assert.Equal(t, red, cropped.NRGBAAt(0, 0))
	assert.Equal(t, green, cropped.NRGBAAt(1, 1))
}

func TestCrop_ClipsToBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(3, 3, blue)

	cropped := Crop(img, image.Rect(3, 3, 10, 10))
	require.Equal(t, 1, cropped.Bounds().Dx())
	require.Equal(t, 1, cropped.Bounds().Dy())
	assert.Equal(t, blue, cropped.NRGBAAt(0, 0))
}

func TestCrop_DisjointIsEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	cropped := Crop(img, image.Rect(10, 10, 12, 12))
	assert.True(t, cropped.Bounds().Empty())
}

func TestOrient_QuarterTurnClockwise(t *testing.T) {
	img := grid(t)
	turned := Orient(img, 1)

	// Dimensions swap on odd turns.
	require.Equal(t, 3, turned.Bounds().Dx())
	require.Equal(t, 2, turned.Bounds().Dy())

	// Top-left of the source lands at the top-right of the result.
	assert.Equal(t, img.NRGBAAt(0, 0), turned.NRGBAAt(2, 0))
	// Bottom-left of the source lands at the top-left.
	assert.Equal(t, img.NRGBAAt(0, 2), turned.NRGBAAt(0, 0))
	// Bottom-right of the source lands at the bottom-left.
	assert.Equal(t, img.NRGBAAt(1, 2), turned.NRGBAAt(0, 1))
}

func TestOrient_HalfTurn(t *testing.T) {
	img := grid(t)
	turned := Orient(img, 2)

	require.Equal(t, img.Bounds(), turned.Bounds())
	assert.Equal(t, img.NRGBAAt(0, 0), turned.NRGBAAt(1, 2))
	assert.Equal(t, img.NRGBAAt(1, 2), turned.NRGBAAt(0, 0))
}

func TestOrient_FullCycleIsIdentity(t *testing.T) {
	img := grid(t)

	result := Orient(Orient(Orient(Orient(img, 1), 1), 1), 1)
	require.Equal(t, img.Bounds(), result.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, img.NRGBAAt(x, y), result.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestOrient_NegativeTurnsWrap(t *testing.T) {
	img := grid(t)

	cw := Orient(img, 1)
	ccwThree := Orient(img, -3)
	require.Equal(t, cw.Bounds(), ccwThree.Bounds())
	for y := 0; y < cw.Bounds().Dy(); y++ {
		for x := 0; x < cw.Bounds().Dx(); x++ {
			assert.Equal(t, cw.NRGBAAt(x, y), ccwThree.NRGBAAt(x, y))
		}
	}
}

func TestRotate_ZeroAngleKeepsPixels(t *testing.T) {
	img := grid(t)
	rotated := Rotate(img, 0)

	require.Equal(t, img.Bounds(), rotated.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, img.NRGBAAt(x, y), rotated.NRGBAAt(x, y))
		}
	}
}

func TestRotate_QuarterTurnMovesRightEdgeDown(t *testing.T) {
	// A 5x5 image with a red pixel on the right edge at the center row. A
	// quarter turn clockwise maps pixel centers onto pixel centers, so the
	// red ink must land on the bottom edge at the center column.
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	img.SetNRGBA(4, 2, red)

	rotated := Rotate(img, math.Pi/2)
	got := rotated.NRGBAAt(2, 4)
	assert.Greater(t, int(got.R), 200, "expected red ink at bottom center, got %+v", got)
	assert.Greater(t, int(got.A), 200)

	// The original location must be clear again.
	assert.Zero(t, rotated.NRGBAAt(4, 2).A)
}

func TestRotate_EmptySource(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	assert.True(t, Rotate(img, 1).Bounds().Empty())
}
