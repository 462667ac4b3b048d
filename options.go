package pleat

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/pleat/internal/logging"
)

// DefaultDuration is the animation duration used when Options.Duration is
// unset.
const DefaultDuration = 400 * time.Millisecond

// Options configures a Coordinator. The zero value is usable; defaults are
// resolved once when the coordinator is constructed.
type Options struct {
	// Duration is the length of the expand/collapse animation. Zero or
	// negative means DefaultDuration. Individual calls can override it via
	// ExpandWithDuration.
	Duration time.Duration

	// ArrowStart and ArrowEnd are the disclosure arrow's collapsed and
	// expanded directions. Leaving both equal (including both unset) picks
	// the default pair Right to Down, a 90 degree clockwise turn on expand.
	ArrowStart Direction
	ArrowEnd   Direction

	// AllowMultipleExpanded keeps previously expanded rows open when a new
	// row expands. The default collapses the prior row first.
	AllowMultipleExpanded bool

	// Curve eases the animation progress. Nil means fyne.AnimationEaseInOut.
	Curve fyne.AnimationCurve

	// Logger receives session lifecycle records at debug level and aborted
	// operations at warn level. Nil means no logging.
	Logger *slog.Logger

	// OnSessionComplete runs after every finished session, following the
	// per-call done callback. Useful for host-level refresh work.
	OnSessionComplete func()
}

func (o Options) withDefaults() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.ArrowStart == o.ArrowEnd {
		o.ArrowStart = DirectionRight
		o.ArrowEnd = DirectionDown
	}
	if o.Curve == nil {
		o.Curve = fyne.AnimationEaseInOut
	}
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	return o
}
