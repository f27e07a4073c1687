package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// sessionFileName is the fixed dotfile used when no explicit path is given.
const sessionFileName = ".csvplot.json"

// PlotDims are the current plot viewport bounds, written back from the
// renderer every frame so span-relative gestures always see fresh values.
type PlotDims struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

func (d PlotDims) XSpan() float64 { return math.Abs(d.X1 - d.X0) }
func (d PlotDims) YSpan() float64 { return math.Abs(d.Y1 - d.Y0) }

// Pan shifts the viewport by a drag of (dxCells, dyCells) over a plot area
// of wCells x hCells, so the content follows the pointer.
func (d *PlotDims) Pan(dxCells, dyCells float64, wCells, hCells int) {
	if wCells < 1 || hCells < 1 {
		return
	}
	dx := -dxCells * d.XSpan() / float64(wCells)
	dy := dyCells * d.YSpan() / float64(hCells)
	d.X0 += dx
	d.X1 += dx
	d.Y0 += dy
	d.Y1 += dy
}

// Zoom scales both spans around the viewport center; factor < 1 zooms in.
func (d *PlotDims) Zoom(factor float64) {
	cx := (d.X0 + d.X1) / 2
	cy := (d.Y0 + d.Y1) / 2
	hx := (d.X1 - d.X0) / 2 * factor
	hy := (d.Y1 - d.Y0) / 2 * factor
	d.X0, d.X1 = cx-hx, cx+hx
	d.Y0, d.Y1 = cy-hy, cy+hy
}

// Session is the top-level aggregate. The JSON-tagged fields round-trip
// through snapshot files; the rest is transient and reset to defaults when a
// snapshot is loaded. All mutation happens on the single frame handler.
type Session struct {
	Folders      []Folder `json:"folders"`
	SearchPhrase string   `json:"search_phrase"`
	PlotDims     PlotDims `json:"plot_dims"`

	// Transient state, never persisted.
	Errors        ErrorLog `json:"-"`
	Acceleration  float64  `json:"-"`
	CopiedOptions *CSVFile `json:"-"`

	// Running color index for newly drawn entries. Incremented by the render
	// phase only, under the single-writer frame discipline.
	colorIndex int
}

func NewSession() *Session {
	return &Session{SearchPhrase: ".csv"}
}

func (s *Session) nextColorIndex() int {
	s.colorIndex++
	return s.colorIndex
}

// SetSearchPhrase updates the filter. Entries hidden by a previous search
// (PreviouslyPlotted) revert to Idle so a changed filter does not keep stale
// ghosts listed forever; every other state is untouched.
func (s *Session) SetSearchPhrase(phrase string) {
	if phrase == s.SearchPhrase {
		return
	}
	s.SearchPhrase = phrase
	for _, e := range s.Entries() {
		if e.State == StatePreviouslyPlotted {
			e.State = StateIdle
		}
	}
}

// Entries returns pointers to every file entry across all folders, in order.
// The pointers stay valid for the current frame only.
func (s *Session) Entries() []*FileEntry {
	var out []*FileEntry
	for fi := range s.Folders {
		for i := range s.Folders[fi].Files {
			out = append(out, &s.Folders[fi].Files[i])
		}
	}
	return out
}

// AddFolder scans dir and appends it to the session.
func (s *Session) AddFolder(dir string) {
	folder := ScanFolder(dir)
	if len(folder.Files) == 0 {
		s.Errors.Pushf("WARNING: no files found in folder %q", dir)
	}
	s.Folders = append(s.Folders, folder)
}

// PurgeDeletedFolders drops folders marked for deletion. Called once at the
// end of each interaction cycle.
func (s *Session) PurgeDeletedFolders() {
	kept := s.Folders[:0]
	for _, f := range s.Folders {
		if !f.ToBeDeleted {
			kept = append(kept, f)
		}
	}
	s.Folders = kept
}

// DefaultSessionPath resolves the session dotfile in the user's home
// directory. Failure to resolve the home directory is reportable but not
// fatal.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find default session file path: %w", err)
	}
	return filepath.Join(home, sessionFileName), nil
}

// SaveTo writes the persistent session fields to path as JSON.
func (s *Session) SaveTo(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadFrom replaces the persistent fields of s with the snapshot at path and
// resets all transient fields to their defaults. Data series are restored as
// serialized and not re-ingested; an entry saved without data lazily reloads
// on its next interaction.
func (s *Session) LoadFrom(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read contents of session file %s: %w", path, err)
	}
	var loaded Session
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("could not read session file %s: %w", path, err)
	}
	for _, e := range loaded.Entries() {
		e.State = sanitizeState(e.State)
		// Restored colors came from earlier positions in the hue sequence;
		// resume it past them so new entries don't repeat an assigned hue.
		if !e.Color.IsTransparent() {
			loaded.colorIndex++
		}
	}
	*s = loaded
	return nil
}

// Save writes to path, or to the default dotfile when path is empty.
// Failures land in the error log.
func (s *Session) Save(path string) bool {
	if path == "" {
		var err error
		if path, err = DefaultSessionPath(); err != nil {
			s.Errors.Pushf("ERROR: %v", err)
			return false
		}
	}
	if err := s.SaveTo(path); err != nil {
		s.Errors.Pushf("ERROR: could not write session: %v", err)
		return false
	}
	return true
}

// Load restores from path, or from the default dotfile when path is empty.
// Failures land in the error log and leave the session untouched.
func (s *Session) Load(path string) bool {
	if path == "" {
		var err error
		if path, err = DefaultSessionPath(); err != nil {
			s.Errors.Pushf("ERROR: %v", err)
			return false
		}
	}
	if err := s.LoadFrom(path); err != nil {
		s.Errors.Pushf("ERROR: %v", err)
		return false
	}
	return true
}
