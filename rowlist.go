package pleat

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RowList is the host table shipped with this package: a vertical column of
// Row containers inside a scroll viewport, with a clipped free-position
// overlay layer stacked on top for the coordinator's snapshot stand-ins.
// Rows are fully materialized; there is no virtualization, so it suits
// settings screens, FAQ pages and other bounded lists rather than unbounded
// feeds.
//
// The data binding follows the length/create/update callback shape of
// widget.List. RowList owns row tap routing: handlers installed on
// individual rows are replaced by the list's own wiring, so hosts listen
// through SetOnRowTapped.
type RowList struct {
	widget.BaseWidget

	length func() int
	create func() *Row
	update func(index int, row *Row)

	rows    []*Row
	heights map[int]float32

	content *fyne.Container
	scroll  *container.Scroll
	overlay *fyne.Container
	clip    *container.Scroll
	root    *fyne.Container

	onRowTapped func(index int)
}

var _ Table = (*RowList)(nil)

// NewRowList creates a list bound to the given callbacks and performs the
// initial load. All three callbacks are required; nil panics.
func NewRowList(length func() int, create func() *Row, update func(index int, row *Row)) *RowList {
	if length == nil || create == nil || update == nil {
		panic("pleat: NewRowList requires length, create and update callbacks")
	}
	l := &RowList{
		length:  length,
		create:  create,
		update:  update,
		heights: make(map[int]float32),
	}
	l.content = container.New(&rowStack{list: l})
	l.scroll = container.NewVScroll(l.content)
	// Stand-ins overshoot the viewport by up to a full viewport on either
	// side, and only scroll containers clip their content, so the overlay
	// rides inside a non-scrolling one. It stays hidden between sessions;
	// while visible it takes the wheel events meant for the row viewport.
	l.overlay = container.NewWithoutLayout()
	l.clip = container.NewScroll(l.overlay)
	l.clip.Direction = container.ScrollNone
	l.clip.Hide()
	l.root = container.NewStack(l.scroll, l.clip)
	l.ExtendBaseWidget(l)
	l.Reload()
	return l
}

// SetOnRowTapped registers the handler invoked with the tapped row's current
// index.
func (l *RowList) SetOnRowTapped(fn func(index int)) {
	l.onRowTapped = fn
}

// Reload re-syncs the rows with the data source. Every reused row is
// recycled before update runs, so content and arrow state from its previous
// data position never leak into the new one. Height overrides are dropped;
// a coordinator animating this list should be Reset alongside.
func (l *RowList) Reload() {
	n := l.length()
	if n < 0 {
		n = 0
	}
	for len(l.rows) > n {
		last := l.rows[len(l.rows)-1]
		last.Recycle()
		l.rows = l.rows[:len(l.rows)-1]
	}
	for len(l.rows) < n {
		row := l.create()
		if row == nil {
			panic("pleat: RowList create callback returned nil")
		}
		l.hookRow(row)
		l.rows = append(l.rows, row)
	}
	for i, row := range l.rows {
		row.Recycle()
		l.update(i, row)
	}
	l.heights = make(map[int]float32)
	l.content.Objects = make([]fyne.CanvasObject, len(l.rows))
	for i, row := range l.rows {
		l.content.Objects[i] = row
	}
	l.Relayout()
}

func (l *RowList) hookRow(row *Row) {
	row.SetOnTapped(func() {
		if l.onRowTapped == nil {
			return
		}
		if i := l.indexOf(row); i >= 0 {
			l.onRowTapped(i)
		}
	})
}

func (l *RowList) indexOf(row *Row) int {
	for i, r := range l.rows {
		if r == row {
			return i
		}
	}
	return -1
}

// RowCount implements Table.
func (l *RowList) RowCount() int {
	return len(l.rows)
}

// Row implements Table.
func (l *RowList) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(l.rows) {
		return nil, false
	}
	return l.rows[index], true
}

// Viewport implements Table.
func (l *RowList) Viewport() fyne.Size {
	return l.scroll.Size()
}

// Offset implements Table.
func (l *RowList) Offset() float32 {
	return l.scroll.Offset.Y
}

// ScrollTo implements Table.
func (l *RowList) ScrollTo(offset float32) {
	limit := l.content.MinSize().Height - l.scroll.Size().Height
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > limit {
		offset = limit
	}
	l.scroll.Offset = fyne.NewPos(0, offset)
	l.scroll.Refresh()
}

// SetScrollEnabled implements Table. The overlay clip layer raises while
// scrolling is disabled and lowers when it is restored; both track the
// session driving them.
func (l *RowList) SetScrollEnabled(enabled bool) {
	if enabled {
		l.scroll.Direction = container.ScrollVerticalOnly
		l.clip.Hide()
	} else {
		l.scroll.Direction = container.ScrollNone
		l.clip.Show()
	}
	l.scroll.Refresh()
}

// SetRowHeight implements Table. The override is applied by the next
// Relayout and survives until the next Reload.
func (l *RowList) SetRowHeight(index int, height float32) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.heights[index] = height
}

// Relayout implements Table.
func (l *RowList) Relayout() {
	l.content.Refresh()
	l.scroll.Refresh()
}

// Content implements Table.
func (l *RowList) Content() fyne.CanvasObject {
	return l.content
}

// Overlay implements Table.
func (l *RowList) Overlay() *fyne.Container {
	return l.overlay
}

// rowHeight resolves the display height for one row: coordinator override
// first, then the row's own collapsed or expanded height.
func (l *RowList) rowHeight(index int) float32 {
	if h, ok := l.heights[index]; ok {
		return h
	}
	row := l.rows[index]
	if row.Expanded() {
		return row.ExpandedHeight()
	}
	return row.CollapsedHeight()
}

// rowTop returns the content-coordinate top edge of the given row.
func (l *RowList) rowTop(index int) float32 {
	var y float32
	for i := 0; i < index; i++ {
		y += l.rowHeight(i)
	}
	return y
}

// CreateRenderer implements fyne.Widget.
func (l *RowList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.root)
}

// rowStack lays rows out as a full-width vertical stack at the heights the
// list resolves per row.
type rowStack struct {
	list *RowList
}

var _ fyne.Layout = (*rowStack)(nil)

func (s *rowStack) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var y float32
	for i, obj := range objects {
		h := s.list.rowHeight(i)
		obj.Move(fyne.NewPos(0, y))
		obj.Resize(fyne.NewSize(size.Width, h))
		y += h
	}
}

func (s *rowStack) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var min fyne.Size
	for i, obj := range objects {
		w := obj.MinSize().Width
		if w > min.Width {
			min.Width = w
		}
		min.Height += s.list.rowHeight(i)
	}
	return min
}
