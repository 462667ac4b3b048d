// Package imaging provides the small set of bitmap operations the animation
// choreography needs: cropping captured regions, exact quarter-turn
// orientation for resting arrows, and arbitrary-angle rotation for the
// animated arrow clone.
package imaging

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Crop returns a copy of the region r of src as a new NRGBA image. The
// rectangle is clipped to the source bounds; a disjoint rectangle yields an
// empty image. The result never aliases src, so it stays valid after the
// source capture is released.
func Crop(src image.Image, r image.Rectangle) *image.NRGBA {
	r = r.Intersect(src.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if r.Empty() {
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

// Rotate returns src rotated by the given angle in radians about its center.
// Positive angles rotate clockwise in screen coordinates. The result keeps
// the source bounds with transparent fill in the uncovered corners; arrow
// glyphs are inscribed well inside their icon box, so nothing visible is
// clipped at intermediate angles.
func Rotate(src image.Image, radians float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}

	sin, cos := math.Sincos(radians)
	scx := float64(b.Min.X) + float64(b.Dx())/2
	scy := float64(b.Min.Y) + float64(b.Dy())/2
	dcx := float64(b.Dx()) / 2
	dcy := float64(b.Dy()) / 2

	// Maps the source-space point (sx, sy) to
	// (cos·(sx−scx) − sin·(sy−scy) + dcx, sin·(sx−scx) + cos·(sy−scy) + dcy).
	m := f64.Aff3{
		cos, -sin, dcx - cos*scx + sin*scy,
		sin, cos, dcy - sin*scx - cos*scy,
	}
	xdraw.BiLinear.Transform(dst, m, src, b, xdraw.Over, nil)
	return dst
}

// Orient returns src rotated by the given number of clockwise quarter turns
// using exact pixel transposition, so repeated re-orientation never
// accumulates resampling loss. Negative counts turn counter-clockwise. Odd
// turn counts swap the image width and height.
func Orient(src image.Image, quarterTurns int) *image.NRGBA {
	turns := ((quarterTurns % 4) + 4) % 4
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.NRGBA
	if turns%2 == 0 {
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
	}
	if b.Empty() {
		return dst
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.At(b.Min.X+x, b.Min.Y+y)
			switch turns {
			case 0:
				dst.Set(x, y, c)
			case 1: // 90° clockwise: left edge becomes top edge
				dst.Set(h-1-y, x, c)
			case 2:
				dst.Set(w-1-x, h-1-y, c)
			case 3: // 90° counter-clockwise: top edge becomes left edge
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}
