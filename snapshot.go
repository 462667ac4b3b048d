package pleat

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"

	"github.com/shhac/pleat/internal/imaging"
)

// fixedLayout pins its objects at the origin with an exact size, so an
// offscreen render happens at the live on-screen geometry rather than the
// object's minimum size.
type fixedLayout struct {
	size fyne.Size
}

func (l fixedLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return l.size
}

func (l fixedLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.Position{})
		o.Resize(l.size)
	}
}

// renderRegion rasterizes obj through an offscreen software canvas at the
// given size and returns the pixels. The object's frame is preserved and
// restored around the render, making the capture a side-effect-free read of
// a live widget tree: the offscreen canvas repositions the object, and the
// original position and size are put back before the next real frame paints.
func renderRegion(obj fyne.CanvasObject, size fyne.Size) image.Image {
	origPos := obj.Position()
	origSize := obj.Size()

	holder := container.New(fixedLayout{size: size}, obj)
	img := software.Render(holder, fyne.CurrentApp().Settings().Theme())

	obj.Resize(origSize)
	obj.Move(origPos)
	return img
}

// cropUnits cuts the horizontal band [top, bottom) out of a capture whose
// pixels map one-to-one onto canvas units.
func cropUnits(img image.Image, top, bottom float32) *image.NRGBA {
	b := img.Bounds()
	return imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y+round(top), b.Max.X, b.Min.Y+round(bottom)))
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func lerp(from, to float32, p float32) float32 {
	return from + (to-from)*p
}

// region is a vertical span of the scroll content, in content coordinates.
type region struct {
	top, bottom float32
}

func (r region) height() float32 {
	return r.bottom - r.top
}

func (r region) empty() bool {
	return r.bottom-r.top < 1
}

// snapshotPair holds the two transient bitmap stand-ins that cover the table
// while it relayouts beneath an animation session: one for the content above
// the toggled row's info edge, one for the content below. Either image may be
// nil when its region is empty (first or last row). The pair exists only for
// the duration of one session; detach releases both stand-ins.
type snapshotPair struct {
	above *canvas.Image
	below *canvas.Image

	aboveStart, aboveEnd fyne.Position
	belowStart, belowEnd fyne.Position

	// Originating capture geometry.
	aboveRegion, belowRegion region
	fromOffset, toOffset     float32
}

// newStandIn wraps captured pixels in a canvas image sized to its region.
func newStandIn(img image.Image, width float32, r region) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillStretch
	ci.Resize(fyne.NewSize(width, r.height()))
	return ci
}

// attach adds the stand-ins to the overlay. The below snapshot is added
// first so the above snapshot draws over it: during a collapse the details
// pixels at the top of the below snapshot slide underneath the above
// snapshot's info edge and disappear behind it.
func (s *snapshotPair) attach(overlay *fyne.Container) {
	if s.below != nil {
		overlay.Add(s.below)
	}
	if s.above != nil {
		overlay.Add(s.above)
	}
	s.place(0)
}

// place positions both stand-ins at animation progress p in [0, 1].
func (s *snapshotPair) place(p float32) {
	if s.above != nil {
		s.above.Move(fyne.NewPos(
			lerp(s.aboveStart.X, s.aboveEnd.X, p),
			lerp(s.aboveStart.Y, s.aboveEnd.Y, p),
		))
		canvas.Refresh(s.above)
	}
	if s.below != nil {
		s.below.Move(fyne.NewPos(
			lerp(s.belowStart.X, s.belowEnd.X, p),
			lerp(s.belowStart.Y, s.belowEnd.Y, p),
		))
		canvas.Refresh(s.below)
	}
}

// detach removes both stand-ins from the overlay and drops them.
func (s *snapshotPair) detach(overlay *fyne.Container) {
	if s.below != nil {
		overlay.Remove(s.below)
		s.below = nil
	}
	if s.above != nil {
		overlay.Remove(s.above)
		s.above = nil
	}
	overlay.Refresh()
}
