package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one accordion row: a title always on show and a body revealed by
// expanding the row.
type Entry struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// defaultEntries feeds the demo when no data file is configured.
func defaultEntries() []Entry {
	return []Entry{
		{
			Title: "What am I looking at?",
			Body: "An accordion built from plain rows. Tapping a row slides the " +
				"rows below it out of the way and reveals this detail text; " +
				"tapping again folds it back up. The slide animates bitmap " +
				"snapshots of the surrounding rows, so the row content itself " +
				"never has to take part in the animation.",
		},
		{
			Title: "Why does the arrow turn?",
			Body: "Each row carries a disclosure arrow. While a row opens the " +
				"arrow rotates a quarter turn clockwise, and it rotates back " +
				"when the row closes. The rotation is animated on a bitmap " +
				"clone and the real icon snaps to the final direction at the " +
				"end, so repeated toggling never drifts.",
		},
		{
			Title: "What happens if I tap during the animation?",
			Body: "Scrolling is locked while a slide runs and the newest tap is " +
				"queued. It plays as soon as the current animation finishes; " +
				"older queued taps are dropped.",
		},
		{
			Title: "Can more than one row stay open?",
			Body: "By default opening a row closes the previous one first, in " +
				"sequence. Turn on \"Allow multiple\" in the toolbar to keep " +
				"every opened row expanded.",
		},
		{
			Title: "Where do these entries come from?",
			Body: "This built-in set. Point PLEAT_DATA at a YAML file with " +
				"title/body pairs and the demo loads that instead, reloading " +
				"live whenever the file changes on disk.",
		},
	}
}

// loadEntries reads the entries file. An empty path selects the built-in set.
func loadEntries(path string) ([]Entry, error) {
	if path == "" {
		return defaultEntries(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entries file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse entries file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries file %s holds no entries", path)
	}
	return entries, nil
}
