package pleat

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrowArt builds a 3x3 transparent bitmap with a single red pixel at the
// right-center edge, a minimal arrow pointing right.
func arrowArt() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.Set(2, 1, color.NRGBA{R: 255, A: 255})
	return img
}

func isRed(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r > 0xC000 && g < 0x4000 && b < 0x4000 && a > 0xC000
}

func TestNewArrowIcon(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := NewArrowIcon(arrowArt(), DirectionRight)

	assert.Equal(t, DirectionRight, a.Direction())
	assert.Equal(t, fyne.NewSize(3, 3), a.MinSize())
	assert.True(t, isRed(a.Image().At(2, 1)))
}

func TestArrowIcon_SetDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		tipX int
		tipY int
	}{
		{name: "down", dir: DirectionDown, tipX: 1, tipY: 2},
		{name: "left", dir: DirectionLeft, tipX: 0, tipY: 1},
		{name: "up", dir: DirectionUp, tipX: 1, tipY: 0},
		{name: "right", dir: DirectionRight, tipX: 2, tipY: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			defer app.Quit()
			a := NewArrowIcon(arrowArt(), DirectionRight)

			a.SetDirection(tt.dir)

			assert.Equal(t, tt.dir, a.Direction())
			assert.True(t, isRed(a.Image().At(tt.tipX, tt.tipY)),
				"tip should move to (%d,%d)", tt.tipX, tt.tipY)
		})
	}
}

func TestArrowIcon_SetDirectionIsLossless(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	a := NewArrowIcon(arrowArt(), DirectionRight)

	// A full cycle of direction changes must restore the base art exactly.
	for _, d := range []Direction{DirectionDown, DirectionLeft, DirectionUp, DirectionRight} {
		a.SetDirection(d)
	}

	got := a.Image()
	require.Equal(t, image.Rect(0, 0, 3, 3), got.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				assert.True(t, isRed(got.At(x, y)))
				continue
			}
			_, _, _, alpha := got.At(x, y).RGBA()
			assert.Zero(t, alpha, "pixel (%d,%d) should stay transparent", x, y)
		}
	}
}

func TestArrowIcon_Reset(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	a := NewArrowIcon(arrowArt(), DirectionRight)

	a.SetDirection(DirectionDown)
	a.Hide()
	a.Reset()

	assert.Equal(t, DirectionRight, a.Direction())
	assert.True(t, a.Visible())
	assert.True(t, isRed(a.Image().At(2, 1)))
}

func TestNewArrowIconFromResource(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := NewArrowIconFromResource(theme.MenuExpandIcon(), DirectionRight, fyne.NewSize(24, 24))

	require.NotNil(t, a.Image())
	assert.Equal(t, fyne.NewSize(24, 24), a.MinSize())
	assert.Equal(t, 24, a.Image().Bounds().Dx())
	assert.Equal(t, 24, a.Image().Bounds().Dy())
}
