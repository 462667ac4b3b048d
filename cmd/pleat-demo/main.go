package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/pleat"
	"github.com/shhac/pleat/internal/logging"
)

const (
	// collapsedRowHeight is the fixed info height of every accordion row.
	collapsedRowHeight = 44
	// arrowSize is the rasterization size of the disclosure arrow icon.
	arrowSize = 24
	// detailsHeight anchors the details region. A wrapping label reports a
	// single-line minimum height, so the demo fixes the region height
	// instead of deriving it from the text.
	detailsHeight = 140
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting pleat accordion demo")

	cfg := ConfigFromEnv()

	logger, err := logging.InitLogger("pleat-demo", cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	entries, err := loadEntries(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	logger.Info("entries loaded",
		slog.Int("count", len(entries)),
		slog.String("path", cfg.DataPath),
	)

	fyneApp := app.NewWithID("com.shhac.pleat.demo")
	window := fyneApp.NewWindow("Pleat Accordion Demo")

	demo := newDemoScreen(logger, entries)
	window.SetContent(demo.content)
	window.Resize(fyne.NewSize(520, 640))

	if cfg.DataPath != "" {
		stop, werr := watchEntries(cfg.DataPath, logger, func() {
			demo.reloadFrom(cfg.DataPath)
		})
		if werr != nil {
			logger.Warn("entries watcher unavailable", slog.Any("error", werr))
		} else {
			defer stop()
			logger.Info("watching entries file", slog.String("path", cfg.DataPath))
		}
	}

	// Run the application (blocking)
	window.ShowAndRun()

	logger.Info("demo shutdown complete")
	return nil
}

// demoScreen wires the accordion list, its coordinator and the demo controls.
type demoScreen struct {
	logger *slog.Logger

	entries  []Entry
	multiple bool
	duration time.Duration

	list    *pleat.RowList
	coord   *pleat.Coordinator
	status  *widget.Label
	content fyne.CanvasObject
}

func newDemoScreen(logger *slog.Logger, entries []Entry) *demoScreen {
	d := &demoScreen{
		logger:   logger,
		entries:  entries,
		duration: pleat.DefaultDuration,
	}

	d.list = pleat.NewRowList(d.rowCount, d.createRow, d.updateRow)
	d.list.SetOnRowTapped(d.handleRowTapped)
	d.status = widget.NewLabel("")
	d.rebuildCoordinator()

	d.content = container.NewBorder(d.buildControls(), d.status, nil, nil, d.list)
	d.refreshStatus()
	return d
}

// rebuildCoordinator replaces the coordinator, picking up the current
// expansion mode. Session completions drive the status line.
func (d *demoScreen) rebuildCoordinator() {
	d.coord = pleat.NewCoordinator(d.list, pleat.Options{
		AllowMultipleExpanded: d.multiple,
		Logger:                d.logger,
		OnSessionComplete:     d.refreshStatus,
	})
}

func (d *demoScreen) rowCount() int {
	return len(d.entries)
}

func (d *demoScreen) createRow() *pleat.Row {
	arrow := pleat.NewArrowIconFromResource(
		theme.MenuExpandIcon(), pleat.DirectionRight, fyne.NewSize(arrowSize, arrowSize))
	title := widget.NewLabel("")
	title.TextStyle = fyne.TextStyle{Bold: true}
	info := container.NewBorder(nil, nil, nil, container.NewCenter(arrow), title)
	row := pleat.NewRow(info, collapsedRowHeight)
	row.SetArrow(arrow)
	return row
}

func (d *demoScreen) updateRow(index int, row *pleat.Row) {
	title := row.Info().(*fyne.Container).Objects[0].(*widget.Label)
	title.SetText(d.entries[index].Title)
}

// detailsFor builds the expanded content for one entry.
func (d *demoScreen) detailsFor(index int) fyne.CanvasObject {
	body := widget.NewLabel(d.entries[index].Body)
	body.Wrapping = fyne.TextWrapWord
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, detailsHeight))
	return container.NewStack(spacer, container.NewPadded(body))
}

// handleRowTapped toggles the tapped row. Expanding the active row collapses
// it, so a single call covers both gestures.
func (d *demoScreen) handleRowTapped(index int) {
	d.coord.ExpandWithDuration(index, d.detailsFor(index), d.duration, nil)
}

func (d *demoScreen) buildControls() fyne.CanvasObject {
	speeds := []struct {
		label    string
		duration time.Duration
	}{
		{"200 ms", 200 * time.Millisecond},
		{"400 ms", 400 * time.Millisecond},
		{"800 ms", 800 * time.Millisecond},
		{"1.5 s", 1500 * time.Millisecond},
	}

	names := make([]string, len(speeds))
	for i, s := range speeds {
		names[i] = s.label
	}
	sel := widget.NewSelect(names, func(name string) {
		for _, s := range speeds {
			if s.label == name {
				d.duration = s.duration
				break
			}
		}
		d.logger.Debug("animation duration changed", slog.Duration("duration", d.duration))
	})
	sel.SetSelected("400 ms")

	multi := widget.NewCheck("Allow multiple", d.setMultiple)

	return container.NewHBox(widget.NewLabel("Speed"), sel, multi)
}

// setMultiple switches the expansion mode. The list reloads so every row
// starts the new mode collapsed, and the coordinator is rebuilt with fresh
// state.
func (d *demoScreen) setMultiple(on bool) {
	d.multiple = on
	d.list.Reload()
	d.rebuildCoordinator()
	d.refreshStatus()
	d.logger.Info("expansion mode changed", slog.Bool("multiple", on))
}

// reloadFrom re-reads the data file and resets the accordion. The watcher
// delivers this on the UI thread.
func (d *demoScreen) reloadFrom(path string) {
	entries, err := loadEntries(path)
	if err != nil {
		d.logger.Error("entries reload failed", slog.Any("error", err))
		return
	}
	d.entries = entries
	d.list.Reload()
	d.coord.Reset()
	d.refreshStatus()
	d.logger.Info("entries reloaded", slog.Int("count", len(entries)))
}

func (d *demoScreen) refreshStatus() {
	active := d.coord.ActiveRows()
	switch {
	case len(active) == 1 && active[0] < len(d.entries):
		d.status.SetText("Expanded: " + d.entries[active[0]].Title)
	case len(active) > 1:
		d.status.SetText(fmt.Sprintf("%d entries expanded", len(active)))
	default:
		d.status.SetText(fmt.Sprintf("%d entries", len(d.entries)))
	}
}
