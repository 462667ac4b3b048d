// Package pleat expands and collapses table rows accordion style,
// synchronizing the row height change with a screenshot based slide
// animation and an optional rotating disclosure arrow. Rows live in a
// scrollable host implementing Table (RowList is the one shipped here); a
// Coordinator runs the choreography: it captures bitmap stand-ins of the
// content above and below the toggled row, slides them while the real table
// relayouts underneath, rotates a clone of the row's arrow in lockstep, and
// reconciles all state when the animation completes.
package pleat

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
)

// Coordinator orchestrates expand and collapse sessions over a Table. At
// most one session runs at a time; requests arriving mid-session are held in
// a single pending slot where the newest request wins and a displaced
// request has its callback invoked immediately so no caller hangs.
//
// All methods must be called on the Fyne UI thread (use fyne.Do when coming
// from another goroutine). Rows managed by a Coordinator are toggled only
// through it; attaching or clearing details behind its back invalidates the
// bookkeeping.
type Coordinator struct {
	table Table
	opts  Options
	log   *slog.Logger
	state *ExpansionState

	session *session
	pending *pendingRequest

	// startAnimation is swapped out by tests to drive ticks manually.
	startAnimation func(*fyne.Animation)
}

type pendingRequest struct {
	run  func()
	done func()
}

// NewCoordinator creates a coordinator driving the given table. A nil table
// panics; option defaults are resolved here, once.
func NewCoordinator(table Table, opts Options) *Coordinator {
	if table == nil {
		panic("pleat: NewCoordinator requires a non-nil table")
	}
	o := opts.withDefaults()
	return &Coordinator{
		table:          table,
		opts:           o,
		log:            o.Logger,
		state:          newExpansionState(o.AllowMultipleExpanded),
		startAnimation: func(a *fyne.Animation) { a.Start() },
	}
}

// Expand opens the row at index and slides the supplied content into its
// details region, invoking done when the animation has completed. Expanding
// the currently active row toggles it closed instead. In single-expansion
// mode an already expanded other row is collapsed first and the expand runs
// from its completion.
func (c *Coordinator) Expand(index int, content fyne.CanvasObject, done func()) {
	c.ExpandWithDuration(index, content, c.opts.Duration, done)
}

// ExpandWithDuration is Expand with a per-call animation duration. A zero or
// negative duration falls back to the configured default.
func (c *Coordinator) ExpandWithDuration(index int, content fyne.CanvasObject, d time.Duration, done func()) {
	if d <= 0 {
		d = c.opts.Duration
	}
	if c.session != nil {
		c.enqueue(func() { c.runExpand(index, content, d, done) }, done, "expand", index)
		return
	}
	c.runExpand(index, content, d, done)
}

// Collapse closes the row at index, invoking done when the animation has
// completed. Collapsing a row that is not active is a no-op that still
// invokes done exactly once.
func (c *Coordinator) Collapse(index int, done func()) {
	if c.session != nil {
		c.enqueue(func() { c.collapseNow(index, done, nil) }, done, "collapse", index)
		return
	}
	c.collapseNow(index, done, nil)
}

// ActiveRow returns the single expanded row. The second return is false
// when no row, or more than one row, is expanded.
func (c *Coordinator) ActiveRow() (int, bool) {
	return c.state.Active()
}

// ActiveRows returns all expanded rows in ascending order.
func (c *Coordinator) ActiveRows() []int {
	return c.state.ActiveRows()
}

// State returns the live expansion state object, for host screens that want
// to query expansion without holding the coordinator itself.
func (c *Coordinator) State() *ExpansionState {
	return c.state
}

// Busy reports whether a session is currently in flight.
func (c *Coordinator) Busy() bool {
	return c.session != nil
}

// Reset clears all expansion bookkeeping and any pending request. Call it
// after reloading the table's data, alongside RowList.Reload. Ignored while
// a session is in flight.
func (c *Coordinator) Reset() {
	if c.session != nil {
		c.log.Warn("reset ignored, session in flight")
		return
	}
	c.pending = nil
	c.state.clear()
	c.log.Debug("expansion state reset")
}

// enqueue stores a request in the pending slot while a session is running.
// The newest request wins; a displaced request's callback fires immediately.
func (c *Coordinator) enqueue(run, done func(), kind string, index int) {
	displaced := c.pending
	c.pending = &pendingRequest{run: run, done: done}
	c.log.Debug("session in flight, request queued", "kind", kind, "row", index)
	if displaced != nil {
		c.log.Warn("pending request replaced", "kind", kind, "row", index)
		if displaced.done != nil {
			displaced.done()
		}
	}
}

func (c *Coordinator) dispatchPending() {
	for c.session == nil && c.pending != nil {
		req := c.pending
		c.pending = nil
		req.run()
	}
}

// runExpand resolves the request against the current expansion state before
// any geometry work: toggling the active row collapses it, and in
// single-expansion mode another active row is collapsed first with the
// expand chained onto its completion.
func (c *Coordinator) runExpand(index int, content fyne.CanvasObject, d time.Duration, done func()) {
	if c.state.IsActive(index) {
		c.collapseNow(index, done, nil)
		return
	}
	if !c.opts.AllowMultipleExpanded {
		if other, ok := c.state.Active(); ok && other != index {
			started := c.collapseNow(other, nil, func() {
				if c.session != nil {
					// A completion hook started another session between
					// the two phases; the expand waits its turn.
					c.enqueue(func() { c.runExpand(index, content, d, done) }, done, "expand", index)
					return
				}
				if !c.expandNow(index, content, d, done) {
					c.dispatchPending()
				}
			})
			if started {
				return
			}
		}
	}
	c.expandNow(index, content, d, done)
}

// expandNow runs the expand choreography. It reports false when the
// operation aborts before an animation starts; done has then already been
// invoked.
func (c *Coordinator) expandNow(index int, content fyne.CanvasObject, d time.Duration, done func()) bool {
	row, ok := c.table.Row(index)
	if !ok {
		c.log.Warn("expand aborted, row out of range", "row", index, "rows", c.table.RowCount())
		if done != nil {
			done()
		}
		return false
	}

	c.state.activate(index)
	c.table.SetScrollEnabled(false)

	viewport := c.table.Viewport()
	fromOffset := c.table.Offset()
	rowTop := row.Position().Y
	collapsedH := row.CollapsedHeight()
	edge := rowTop + collapsedH

	row.attachDetails(content)
	newHeight := row.ExpandedHeight()
	c.table.SetRowHeight(index, newHeight)
	c.table.Relayout()

	detailsH := newHeight - collapsedH
	newBottom := rowTop + newHeight
	contentH := c.table.Content().MinSize().Height

	s := &session{kind: sessionExpand, index: index, duration: d, done: done}
	s.arrow = cloneArrowIcon(row, c.table.Overlay(), c.opts.ArrowEnd)

	c.table.ScrollTo(revealOffset(fromOffset, rowTop, newBottom, viewport.Height, contentH))
	toOffset := c.table.Offset()
	if s.arrow != nil {
		s.arrow.finalize(fromOffset, toOffset)
	}

	full := captureContent(c.table.Content(), contentH)
	width := contentWidth(c.table.Content())

	s.snaps.fromOffset = fromOffset
	s.snaps.toOffset = toOffset
	if ar := aboveRegionFor(edge, viewport.Height); !ar.empty() {
		s.snaps.above = newStandIn(cropUnits(full, ar.top, ar.bottom), width, ar)
		s.snaps.aboveRegion = ar
		s.snaps.aboveStart = fyne.NewPos(0, ar.top-fromOffset)
		s.snaps.aboveEnd = fyne.NewPos(0, ar.top-toOffset)
	}
	if br := belowRegionFor(newBottom, contentH, viewport.Height); !br.empty() {
		s.snaps.below = newStandIn(cropUnits(full, br.top, br.bottom), width, br)
		s.snaps.belowRegion = br
		// The rows below sat directly under the info edge before the
		// relayout; they settle under the row's new bottom.
		s.snaps.belowStart = fyne.NewPos(0, edge-fromOffset)
		s.snaps.belowEnd = fyne.NewPos(0, newBottom-toOffset)
	}

	c.log.Debug("expand session starting",
		"row", index, "duration", d, "details_height", detailsH)
	c.begin(s)
	return true
}

// collapseNow runs the collapse choreography. nextRun, when non-nil, is the
// chained second phase started from the completion handler. It reports
// false when the operation aborts before an animation starts; done has then
// already been invoked and nextRun is discarded.
func (c *Coordinator) collapseNow(index int, done, nextRun func()) bool {
	if !c.state.IsActive(index) {
		c.log.Warn("collapse requested for inactive row", "row", index)
		if done != nil {
			done()
		}
		return false
	}
	row, ok := c.table.Row(index)
	if !ok {
		c.state.deactivate(index)
		c.log.Warn("collapse aborted, row out of range", "row", index, "rows", c.table.RowCount())
		if done != nil {
			done()
		}
		return false
	}

	// The active marker clears before any layout work so height queries
	// made during the session already report the collapsed state.
	c.state.deactivate(index)
	c.table.SetScrollEnabled(false)

	viewport := c.table.Viewport()
	fromOffset := c.table.Offset()
	rowTop := row.Position().Y
	collapsedH := row.CollapsedHeight()
	expandedH := row.Size().Height
	if expandedH <= collapsedH {
		expandedH = row.ExpandedHeight()
	}
	edge := rowTop + collapsedH
	detailsH := expandedH - collapsedH

	s := &session{kind: sessionCollapse, index: index, duration: c.opts.Duration, done: done, next: nextRun}
	s.arrow = cloneArrowIcon(row, c.table.Overlay(), c.opts.ArrowStart)

	// Capture happens at the still-expanded geometry: the below region
	// starts at the info edge, so the details pixels ride at the top of the
	// below snapshot and the reverse slide tucks them under the above one.
	contentOldH := c.table.Content().MinSize().Height
	full := captureContent(c.table.Content(), contentOldH)
	width := contentWidth(c.table.Content())

	ar := aboveRegionFor(edge, viewport.Height)
	br := belowRegionFor(edge, contentOldH, viewport.Height)

	row.clearDetails()
	c.table.SetRowHeight(index, collapsedH)
	c.table.Relayout()

	contentNewH := c.table.Content().MinSize().Height
	c.table.ScrollTo(clampOffset(fromOffset, viewport.Height, contentNewH))
	toOffset := c.table.Offset()
	if s.arrow != nil {
		s.arrow.finalize(fromOffset, toOffset)
	}

	s.snaps.fromOffset = fromOffset
	s.snaps.toOffset = toOffset
	if !ar.empty() {
		s.snaps.above = newStandIn(cropUnits(full, ar.top, ar.bottom), width, ar)
		s.snaps.aboveRegion = ar
		s.snaps.aboveStart = fyne.NewPos(0, ar.top-fromOffset)
		s.snaps.aboveEnd = fyne.NewPos(0, ar.top-toOffset)
	}
	if !br.empty() {
		s.snaps.below = newStandIn(cropUnits(full, br.top, br.bottom), width, br)
		s.snaps.belowRegion = br
		s.snaps.belowStart = fyne.NewPos(0, edge-fromOffset)
		s.snaps.belowEnd = fyne.NewPos(0, edge-toOffset-detailsH)
	}

	c.log.Debug("collapse session starting",
		"row", index, "duration", s.duration, "details_height", detailsH)
	c.begin(s)
	return true
}

// begin attaches the session's stand-ins to the overlay and starts the
// master animation. One animation drives both snapshots and the arrow clone
// so they can never drift apart.
func (c *Coordinator) begin(s *session) {
	c.session = s
	overlay := c.table.Overlay()
	s.snaps.attach(overlay)
	if s.arrow != nil {
		overlay.Add(s.arrow.img)
		s.arrow.place(0)
	}
	overlay.Refresh()

	anim := fyne.NewAnimation(s.duration, func(p float32) {
		s.snaps.place(p)
		if s.arrow != nil {
			s.arrow.place(p)
		}
		if p >= 1 && !s.finished {
			s.finished = true
			c.finish(s)
		}
	})
	anim.Curve = c.opts.Curve
	c.startAnimation(anim)
}

// finish tears a completed session down. Resources are released
// unconditionally: both stand-ins leave the overlay, the real arrow takes
// its final direction and reappears, scrolling unlocks. Only then do the
// callbacks run, followed by dispatch of any pending request.
func (c *Coordinator) finish(s *session) {
	overlay := c.table.Overlay()
	if s.arrow != nil {
		s.arrow.restore(overlay)
	}
	s.snaps.detach(overlay)
	c.table.SetScrollEnabled(true)
	c.session = nil
	c.log.Debug("session finished", "kind", s.kind.String(), "row", s.index)

	if s.done != nil {
		s.done()
	}
	if c.opts.OnSessionComplete != nil {
		c.opts.OnSessionComplete()
	}
	if s.next != nil {
		s.next()
		return
	}
	c.dispatchPending()
}
