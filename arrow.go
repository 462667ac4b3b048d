package pleat

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/pleat/internal/imaging"
)

// ArrowIcon is a disclosure arrow that can face any of the four cardinal
// directions. Fyne canvas objects carry no rotation transform, so the widget
// re-renders its bitmap by exact quarter turns whenever the direction
// changes; the animation coordinator rotates a temporary clone of the
// current bitmap for the in-flight angles and then snaps the real icon to
// the final direction on completion.
type ArrowIcon struct {
	widget.BaseWidget

	base    image.Image // pixels as supplied, pointing in the natural direction
	natural Direction   // direction the base art points in
	initial Direction   // construction direction, restored by Reset
	current Direction

	img *canvas.Image
}

// NewArrowIcon creates an arrow from a bitmap whose art points in the given
// direction. The icon's minimum size is the bitmap size in canvas units.
func NewArrowIcon(img image.Image, pointing Direction) *ArrowIcon {
	b := img.Bounds()
	return newArrowIcon(img, pointing, fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
}

// NewArrowIconFromResource creates an arrow by rasterizing a (possibly SVG)
// resource at the given size. The current app's theme styles the resource,
// so theme icons such as theme.MenuExpandIcon render in the proper color.
func NewArrowIconFromResource(res fyne.Resource, pointing Direction, size fyne.Size) *ArrowIcon {
	src := canvas.NewImageFromResource(res)
	src.FillMode = canvas.ImageFillContain
	return newArrowIcon(renderRegion(src, size), pointing, size)
}

func newArrowIcon(img image.Image, pointing Direction, size fyne.Size) *ArrowIcon {
	a := &ArrowIcon{
		base:    img,
		natural: pointing,
		initial: pointing,
		current: pointing,
	}
	a.img = canvas.NewImageFromImage(img)
	a.img.FillMode = canvas.ImageFillContain
	a.img.SetMinSize(size)
	a.ExtendBaseWidget(a)
	return a
}

// Direction returns the direction the arrow currently points in.
func (a *ArrowIcon) Direction() Direction {
	return a.current
}

// SetDirection re-renders the arrow pointing in the given direction. The
// re-render is an exact pixel transposition of the base art, so repeated
// direction changes never accumulate resampling loss.
func (a *ArrowIcon) SetDirection(d Direction) {
	if d == a.current {
		return
	}
	a.current = d
	a.img.Image = imaging.Orient(a.base, Steps(a.natural, d))
	a.img.Refresh()
}

// Reset restores the construction direction and visibility. Row recycling
// calls this so no orientation state leaks between data positions.
func (a *ArrowIcon) Reset() {
	a.SetDirection(a.initial)
	a.Show()
}

// Image returns the currently displayed bitmap. The coordinator clones it
// as the source for the rotating stand-in.
func (a *ArrowIcon) Image() image.Image {
	return a.img.Image
}

// CreateRenderer implements fyne.Widget.
func (a *ArrowIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.img)
}
