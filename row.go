package pleat

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Row is an accordion row with two regions stacked vertically. The info
// region is always visible at a fixed height supplied up front, because the
// coordinator needs a stable collapsed height to diff snapshot geometry
// against. The details region exists only while the row is expanded and
// holds caller-supplied content.
type Row struct {
	widget.BaseWidget

	info       fyne.CanvasObject
	infoHeight float32
	details    *fyne.Container // materialized on first expand, emptied on collapse
	arrow      *ArrowIcon
	expanded   bool

	onTapped func()
}

var _ fyne.Tappable = (*Row)(nil)

// NewRow creates a row around the given info content. The info height is a
// hard contract, not a hint. A nil info object or a non-positive height
// panics because no snapshot geometry can be computed without them.
func NewRow(info fyne.CanvasObject, infoHeight float32) *Row {
	if info == nil {
		panic("pleat: NewRow requires a non-nil info object")
	}
	if infoHeight <= 0 {
		panic("pleat: NewRow requires a positive info height")
	}
	r := &Row{info: info, infoHeight: infoHeight}
	r.ExtendBaseWidget(r)
	return r
}

// SetArrow registers the disclosure arrow belonging to this row. The arrow
// is part of the caller's info content; the row only keeps the reference so
// the coordinator can rotate it during toggles and recycling can reset it.
func (r *Row) SetArrow(a *ArrowIcon) {
	r.arrow = a
}

// Arrow returns the registered disclosure arrow, or nil.
func (r *Row) Arrow() *ArrowIcon {
	return r.arrow
}

// SetOnTapped registers the tap handler for the whole row.
func (r *Row) SetOnTapped(fn func()) {
	r.onTapped = fn
}

// Tapped implements fyne.Tappable.
func (r *Row) Tapped(_ *fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

// Expanded reports whether details content is currently attached.
func (r *Row) Expanded() bool {
	return r.expanded
}

// Info returns the info content supplied at construction.
func (r *Row) Info() fyne.CanvasObject {
	return r.info
}

// Details returns the currently attached details content, or nil while the
// row is collapsed.
func (r *Row) Details() fyne.CanvasObject {
	if r.details == nil || len(r.details.Objects) == 0 {
		return nil
	}
	return r.details.Objects[0]
}

// CollapsedHeight returns the fixed info height.
func (r *Row) CollapsedHeight() float32 {
	return r.infoHeight
}

// ExpandedHeight returns the info height plus the minimum height of the
// attached details content. While collapsed it equals CollapsedHeight.
func (r *Row) ExpandedHeight() float32 {
	if !r.expanded {
		return r.infoHeight
	}
	return r.infoHeight + r.details.MinSize().Height
}

// attachDetails materializes the details region if needed, installs the
// content and marks the row expanded. Nil content expands to an empty
// details region. The row's outer size is owned by the list layout, so the
// caller follows up with a relayout.
func (r *Row) attachDetails(content fyne.CanvasObject) {
	if r.details == nil {
		r.details = container.NewStack()
	}
	if content == nil {
		r.details.Objects = nil
	} else {
		r.details.Objects = []fyne.CanvasObject{content}
	}
	r.details.Show()
	r.expanded = true
	r.Refresh()
}

// clearDetails removes any attached content and marks the row collapsed.
func (r *Row) clearDetails() {
	r.expanded = false
	if r.details == nil {
		return
	}
	r.details.Objects = nil
	r.details.Hide()
	r.Refresh()
}

// Recycle prepares the row for a different data position. All details
// content is dropped and the arrow returns to its construction direction,
// so nothing from the previous occupant survives reuse.
func (r *Row) Recycle() {
	r.clearDetails()
	if r.arrow != nil {
		r.arrow.Reset()
	}
}

// CreateRenderer implements fyne.Widget.
func (r *Row) CreateRenderer() fyne.WidgetRenderer {
	return &rowRenderer{row: r}
}

// rowRenderer pins the info region to the top at its fixed height and
// stretches the details region from there to the bottom of the row.
type rowRenderer struct {
	row *Row
}

func (r *rowRenderer) Layout(size fyne.Size) {
	r.row.info.Move(fyne.NewPos(0, 0))
	r.row.info.Resize(fyne.NewSize(size.Width, r.row.infoHeight))
	if r.row.details == nil {
		return
	}
	h := size.Height - r.row.infoHeight
	if h < 0 {
		h = 0
	}
	r.row.details.Move(fyne.NewPos(0, r.row.infoHeight))
	r.row.details.Resize(fyne.NewSize(size.Width, h))
}

func (r *rowRenderer) MinSize() fyne.Size {
	min := fyne.NewSize(r.row.info.MinSize().Width, r.row.infoHeight)
	if r.row.expanded {
		d := r.row.details.MinSize()
		if d.Width > min.Width {
			min.Width = d.Width
		}
		min.Height += d.Height
	}
	return min
}

func (r *rowRenderer) Objects() []fyne.CanvasObject {
	if r.row.details == nil {
		return []fyne.CanvasObject{r.row.info}
	}
	return []fyne.CanvasObject{r.row.info, r.row.details}
}

func (r *rowRenderer) Refresh() {
	r.row.info.Refresh()
	if r.row.details != nil {
		r.row.details.Refresh()
	}
}

func (r *rowRenderer) Destroy() {}
