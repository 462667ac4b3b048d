package pleat

import "fyne.io/fyne/v2"

// Table is the capability surface the coordinator drives a host list through.
// It is deliberately small and mandatory in full; optional behavior belongs
// in Options, resolved at construction, never in optional interface members.
// RowList is the host shipped with this package, but any widget exposing
// these operations can be animated.
type Table interface {
	// RowCount reports the number of rows currently bound.
	RowCount() int

	// Row returns the container at the given index. The second return is
	// false when the index is out of range.
	Row(index int) (*Row, bool)

	// Viewport returns the size of the visible scroll window.
	Viewport() fyne.Size

	// Offset returns the current vertical scroll offset in content
	// coordinates.
	Offset() float32

	// ScrollTo moves the vertical scroll offset. Implementations clamp to
	// the scrollable range.
	ScrollTo(offset float32)

	// SetScrollEnabled toggles user scrolling. The coordinator locks
	// scrolling for the duration of a session so captured geometry stays
	// valid.
	SetScrollEnabled(enabled bool)

	// SetRowHeight records a height for one row, applied on the next
	// Relayout. This is the row-height change path; it must not rebuild or
	// rebind rows.
	SetRowHeight(index int, height float32)

	// Relayout re-runs the row layout after height changes.
	Relayout()

	// Content returns the scrollable content object. The coordinator
	// renders it offscreen to capture snapshot regions.
	Content() fyne.CanvasObject

	// Overlay returns a layout-free layer above the scroll viewport where
	// snapshot stand-ins are placed during a session. Stand-ins may extend
	// well past the visible area; hosts must clip this layer to their own
	// bounds so they never paint over neighboring widgets.
	Overlay() *fyne.Container
}
