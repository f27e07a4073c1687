package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// EntryState drives what a file entry is doing: whether it is listed, drawn,
// and whether it receives pointer-gesture edits. Transitions happen only
// through Clicked, SecondaryClicked and Session.SetSearchPhrase.
type EntryState string

const (
	// StateIdle entries are not shown and have not been ingested (or were
	// reset after a failed ingestion).
	StateIdle EntryState = "idle"
	// StatePlotted entries are drawn in the plot.
	StatePlotted EntryState = "plotted"
	// StateActive entries are drawn with emphasis and are the target of
	// pointer-gesture transform edits.
	StateActive EntryState = "active"
	// StatePreviouslyPlotted entries were hidden by a search narrowing; they
	// stay listed so the user can find them again but are not drawn.
	StatePreviouslyPlotted EntryState = "previously_plotted"
	// StateNeedsConfig marks a failed ingestion (zero usable rows); listed
	// in red, never drawn, until the user fixes the parameters.
	StateNeedsConfig EntryState = "needs_config"
)

// sanitizeState maps unknown tags from old or hand-edited session files to
// idle instead of failing the whole load.
func sanitizeState(s EntryState) EntryState {
	switch s {
	case StateIdle, StatePlotted, StateActive, StatePreviouslyPlotted, StateNeedsConfig:
		return s
	default:
		return StateIdle
	}
}

// FileEntry is one CSV file tracked by the session: its ingestion parameters,
// the (possibly still empty) ingested series, the three string-backed
// transform fields, the assigned color and the display state.
type FileEntry struct {
	Filename string     `json:"filename"`
	DataFile CSVFile    `json:"data_file"`
	Scale    FloatField `json:"scale"`
	Offset   FloatField `json:"offset"`
	XOffset  FloatField `json:"xoffset"`
	Color    RGBA       `json:"color"`
	State    EntryState `json:"state"`
	Preview  string     `json:"preview,omitempty"`
}

func newFileEntry(filename, preview string) FileEntry {
	datafile := defaultCSVFile()
	datafile.Filepath = filename
	return FileEntry{
		Filename: filename,
		DataFile: datafile,
		Scale:    newScaleField(),
		Offset:   newOffsetField(),
		XOffset:  newOffsetField(),
		State:    StateIdle,
		Preview:  preview,
	}
}

func (e *FileEntry) IsActive() bool { return e.State == StateActive }

// IsPlotted reports whether the entry belongs to the plot's working set:
// drawn entries plus NeedsConfig ones, which are listed and enumerable in
// the settings menu so their parameters can be fixed.
func (e *FileEntry) IsPlotted() bool {
	return e.State == StatePlotted || e.State == StateNeedsConfig || e.IsActive()
}

// DrawnInPlot is the drawing predicate: only these entries get a line.
func (e *FileEntry) DrawnInPlot() bool {
	return e.State == StatePlotted || e.State == StateActive
}

func (e *FileEntry) WasJustPlotted() bool { return e.State == StatePreviouslyPlotted }

// ShouldBeListed decides folder-listing visibility. An entry is listed when
// its filename matches every whitespace-separated token of the search phrase
// and its folder is expanded, or regardless of the search when it is part of
// the plot working set (for PreviouslyPlotted only while the folder is
// expanded). A file the user is working with is never hidden by a filter
// edit alone.
func (e *FileEntry) ShouldBeListed(searchPhrase string, expanded bool) bool {
	if e.IsPlotted() {
		return true
	}
	if e.WasJustPlotted() && expanded {
		return true
	}
	if !expanded {
		return false
	}
	for _, token := range strings.Fields(searchPhrase) {
		if !strings.Contains(e.Filename, token) {
			return false
		}
	}
	return true
}

// Clicked is the primary-click transition. The first click past Idle or
// PreviouslyPlotted with no cached series triggers ingestion; afterwards it
// toggles plot membership, and resets NeedsConfig to Idle for a retry.
func (e *FileEntry) Clicked(folderPath string, errlog *ErrorLog) {
	if len(e.DataFile.Data) == 0 && e.State != StateNeedsConfig {
		path := filepath.Join(folderPath, e.Filename)
		if csvfile := LoadCSVFile(path, e.DataFile.Options(), errlog); csvfile != nil {
			e.DataFile = *csvfile
			e.State = StatePlotted
		} else {
			e.State = StateNeedsConfig
		}
		return
	}
	switch e.State {
	case StateActive, StatePlotted:
		e.State = StatePreviouslyPlotted
	case StateIdle, StatePreviouslyPlotted:
		e.State = StatePlotted
	case StateNeedsConfig:
		e.State = StateIdle
	}
}

// SecondaryClicked toggles Plotted and Active; any other state is unchanged.
func (e *FileEntry) SecondaryClicked() {
	switch e.State {
	case StatePlotted:
		e.State = StateActive
	case StateActive:
		e.State = StatePlotted
	}
}

// Reload re-ingests the file with the entry's current parameters. Best
// effort: on failure the previous series and state are kept, unlike the
// first-click ingestion.
func (e *FileEntry) Reload(folderPath string, errlog *ErrorLog) {
	path := filepath.Join(folderPath, e.Filename)
	if csvfile := LoadCSVFile(path, e.DataFile.Options(), errlog); csvfile != nil {
		e.DataFile = *csvfile
	}
}

const previewLineCount = 8

// readPreview captures the first few raw lines of a file for the listing's
// detail panel. Errors are fine, the preview is cosmetic.
func readPreview(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < previewLineCount {
		lines = append(lines, scanner.Text())
	}
	return strings.Join(lines, "\n")
}
