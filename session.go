package pleat

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/shhac/pleat/internal/imaging"
)

type sessionKind int

const (
	sessionExpand sessionKind = iota
	sessionCollapse
)

func (k sessionKind) String() string {
	if k == sessionCollapse {
		return "collapse"
	}
	return "expand"
}

// session is the transient record of one expand or collapse run: which row,
// how long, the caller's completion callback, the snapshot stand-ins and the
// optional arrow clone. At most one session exists at a time and it is
// released in the completion handler regardless of how the animation ends.
type session struct {
	kind     sessionKind
	index    int
	duration time.Duration
	done     func()

	// next chains the second phase of a collapse-then-expand sequence; it
	// runs from the completion handler after done and the session hook.
	next func()

	snaps snapshotPair
	arrow *arrowClone

	finished bool
}

// arrowClone is the inert stand-in that rotates in place of the real arrow
// while a session runs. The real icon is hidden for the duration; the clone
// re-renders its bitmap each tick at the interpolated angle, rotating from
// the icon's current appearance rather than an absolute orientation, so
// repeated expand/collapse cycles compose without orientation drift.
type arrowClone struct {
	icon    *ArrowIcon
	img     *canvas.Image
	base    image.Image
	radians float64
	final   Direction

	start, end fyne.Position
}

// cloneArrowIcon captures the row arrow's visual state and hides the real
// icon. Returns nil when the row has no arrow, the arrow is already hidden,
// or it has not been laid out yet; the caller then skips rotation entirely.
// The clone's start position is the arrow's place in overlay coordinates at
// the current scroll offset; finalize fills in the end position once the
// session's target offset is known.
func cloneArrowIcon(row *Row, overlay fyne.CanvasObject, final Direction) *arrowClone {
	icon := row.Arrow()
	if icon == nil || !icon.Visible() {
		return nil
	}
	size := icon.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}

	drv := fyne.CurrentApp().Driver()
	start := drv.AbsolutePositionForObject(icon).Subtract(drv.AbsolutePositionForObject(overlay))

	img := canvas.NewImageFromImage(icon.Image())
	img.FillMode = canvas.ImageFillStretch
	img.Resize(size)

	clone := &arrowClone{
		icon:    icon,
		img:     img,
		base:    icon.Image(),
		radians: Rotation(icon.Direction(), final),
		final:   final,
		start:   start,
		end:     start,
	}
	icon.Hide()
	return clone
}

// finalize derives the clone's end position from the session's scroll offset
// change. The arrow's content coordinates never move during a session, so
// its overlay position shifts exactly opposite to the offset delta.
func (a *arrowClone) finalize(fromOffset, toOffset float32) {
	a.end = a.start.AddXY(0, fromOffset-toOffset)
}

// place positions and rotates the clone at animation progress p.
func (a *arrowClone) place(p float32) {
	a.img.Move(fyne.NewPos(
		lerp(a.start.X, a.end.X, p),
		lerp(a.start.Y, a.end.Y, p),
	))
	if a.radians != 0 {
		a.img.Image = imaging.Rotate(a.base, a.radians*float64(p))
	}
	a.img.Refresh()
}

// restore removes the clone from the overlay and hands the final orientation
// back to the real icon.
func (a *arrowClone) restore(overlay *fyne.Container) {
	overlay.Remove(a.img)
	a.img = nil
	a.icon.SetDirection(a.final)
	a.icon.Show()
}

// contentWidth reads the live width of the scroll content, falling back to
// its minimum width before the first layout pass.
func contentWidth(content fyne.CanvasObject) float32 {
	w := content.Size().Width
	if w <= 0 {
		w = content.MinSize().Width
	}
	return w
}

// captureContent renders the whole scroll content offscreen at the given
// height. Both snapshot regions are cropped out of this one capture.
func captureContent(content fyne.CanvasObject, height float32) image.Image {
	return renderRegion(content, fyne.NewSize(contentWidth(content), height))
}

// aboveRegionFor spans from the toggled row's info bottom edge upward far
// enough to cover the viewport plus one full viewport beyond, so a scroll
// offset shift during the session never exposes uncaptured pixels.
func aboveRegionFor(edge, viewportH float32) region {
	top := edge - 2*viewportH
	if top < 0 {
		top = 0
	}
	return region{top: top, bottom: edge}
}

// belowRegionFor spans downward from the given content edge, one viewport
// beyond the visible part, clamped to the content height.
func belowRegionFor(top, contentH, viewportH float32) region {
	bottom := top + 2*viewportH
	if bottom > contentH {
		bottom = contentH
	}
	return region{top: top, bottom: bottom}
}

// clampOffset bounds a scroll offset to the scrollable range.
func clampOffset(offset, viewportH, contentH float32) float32 {
	limit := contentH - viewportH
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// revealOffset picks the scroll offset for a freshly expanded row: scroll
// the minimum distance that brings the new bottom edge into view, but never
// push the row's info top above the viewport. When the details are taller
// than the viewport the info top wins.
func revealOffset(current, rowTop, rowBottom, viewportH, contentH float32) float32 {
	target := current
	if low := rowBottom - viewportH; target < low {
		target = low
	}
	if target > rowTop {
		target = rowTop
	}
	return clampOffset(target, viewportH, contentH)
}
