package pleat

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion(t *testing.T) {
	r := region{top: 10, bottom: 50}
	assert.Equal(t, float32(40), r.height())
	assert.False(t, r.empty())

	assert.True(t, region{top: 20, bottom: 20}.empty())
	assert.True(t, region{top: 20, bottom: 20.5}.empty())
}

func TestRenderRegion_IsASideEffectFreeRead(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	rect := canvas.NewRectangle(color.NRGBA{R: 255, A: 255})
	rect.Move(fyne.NewPos(13, 7))
	rect.Resize(fyne.NewSize(50, 20))

	img := renderRegion(rect, fyne.NewSize(30, 10))

	require.Equal(t, 30, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
	assert.True(t, isRed(img.At(15, 5)))

	// The live object's frame is untouched after the capture.
	assert.Equal(t, fyne.NewPos(13, 7), rect.Position())
	assert.Equal(t, fyne.NewSize(50, 20), rect.Size())
}

func TestCropUnits(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(y * 20), A: 255})
		}
	}

	band := cropUnits(src, 3, 7)

	require.Equal(t, 4, band.Bounds().Dx())
	require.Equal(t, 4, band.Bounds().Dy())
	r, _, _, _ := band.At(band.Bounds().Min.X, band.Bounds().Min.Y).RGBA()
	assert.Equal(t, uint32(60), r>>8, "band should start at source row 3")
}

func TestSnapshotPair_AttachPlaceDetach(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	overlay := container.NewWithoutLayout()

	px := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	pair := &snapshotPair{
		above:      newStandIn(px, 100, region{top: 0, bottom: 40}),
		below:      newStandIn(px, 100, region{top: 40, bottom: 80}),
		aboveStart: fyne.NewPos(0, 0),
		aboveEnd:   fyne.NewPos(0, -40),
		belowStart: fyne.NewPos(0, 40),
		belowEnd:   fyne.NewPos(0, 120),
	}

	pair.attach(overlay)

	// Below first, above on top, both parked at their start positions.
	require.Len(t, overlay.Objects, 2)
	assert.Equal(t, pair.below, overlay.Objects[0])
	assert.Equal(t, pair.above, overlay.Objects[1])
	assert.Equal(t, fyne.NewPos(0, 0), pair.above.Position())
	assert.Equal(t, fyne.NewPos(0, 40), pair.below.Position())
	assert.Equal(t, fyne.NewSize(100, 40), pair.above.Size())

	pair.place(0.5)
	assert.Equal(t, fyne.NewPos(0, -20), pair.above.Position())
	assert.Equal(t, fyne.NewPos(0, 80), pair.below.Position())

	pair.place(1)
	assert.Equal(t, fyne.NewPos(0, -40), pair.above.Position())
	assert.Equal(t, fyne.NewPos(0, 120), pair.below.Position())

	pair.detach(overlay)
	assert.Empty(t, overlay.Objects)
	assert.Nil(t, pair.above)
	assert.Nil(t, pair.below)
}

func TestSnapshotPair_MissingSidesAreSkipped(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	overlay := container.NewWithoutLayout()

	pair := &snapshotPair{}
	pair.attach(overlay)
	pair.place(0.5)
	pair.detach(overlay)

	assert.Empty(t, overlay.Objects)
}
