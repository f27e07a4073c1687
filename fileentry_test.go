package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempFolderWith(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestClickedIngestsOnFirstClick(t *testing.T) {
	dir := tempFolderWith(t, "data.csv", "1,2\n3,4\n")
	e := newFileEntry("data.csv", "")
	var errlog ErrorLog

	e.Clicked(dir, &errlog)
	if e.State != StatePlotted {
		t.Fatalf("state = %s, want %s", e.State, StatePlotted)
	}
	if len(e.DataFile.Data) != 2 {
		t.Fatalf("ingested %d points, want 2", len(e.DataFile.Data))
	}

	// Second click toggles without re-ingesting.
	e.Clicked(dir, &errlog)
	if e.State != StatePreviouslyPlotted {
		t.Errorf("state = %s, want %s", e.State, StatePreviouslyPlotted)
	}
	if len(e.DataFile.Data) != 2 {
		t.Errorf("cached series should survive the toggle")
	}
}

func TestClickedIngestionFailure(t *testing.T) {
	dir := tempFolderWith(t, "noise.csv", "not,numbers\nat,all\n")
	e := newFileEntry("noise.csv", "")
	var errlog ErrorLog

	e.Clicked(dir, &errlog)
	if e.State != StateNeedsConfig {
		t.Fatalf("state = %s, want %s", e.State, StateNeedsConfig)
	}
	if errlog.Len() == 0 {
		t.Error("failed ingestion should report into the error log")
	}

	// A click on NeedsConfig resets to Idle without ingesting.
	before := errlog.Len()
	e.Clicked(dir, &errlog)
	if e.State != StateIdle {
		t.Fatalf("state = %s, want %s", e.State, StateIdle)
	}
	if errlog.Len() != before {
		t.Error("reset click must not attempt ingestion")
	}

	// The next click retries the ingestion.
	e.Clicked(dir, &errlog)
	if e.State != StateNeedsConfig {
		t.Errorf("state = %s, want %s after retry", e.State, StateNeedsConfig)
	}
	if errlog.Len() <= before {
		t.Error("retry should report again")
	}
}

func TestClickedToggleTable(t *testing.T) {
	cases := []struct {
		from, to EntryState
	}{
		{StatePlotted, StatePreviouslyPlotted},
		{StateActive, StatePreviouslyPlotted},
		{StateIdle, StatePlotted},
		{StatePreviouslyPlotted, StatePlotted},
	}
	for _, tc := range cases {
		e := newFileEntry("data.csv", "")
		e.DataFile.Data = [][2]float64{{1, 2}}
		e.State = tc.from
		var errlog ErrorLog
		e.Clicked("/nonexistent", &errlog)
		if e.State != tc.to {
			t.Errorf("click from %s: got %s, want %s", tc.from, e.State, tc.to)
		}
		if errlog.Len() != 0 {
			t.Errorf("click from %s with cached data should not touch disk: %v",
				tc.from, errlog.Entries())
		}
	}
}

func TestSecondaryClicked(t *testing.T) {
	cases := []struct {
		from, to EntryState
	}{
		{StatePlotted, StateActive},
		{StateActive, StatePlotted},
		{StateIdle, StateIdle},
		{StatePreviouslyPlotted, StatePreviouslyPlotted},
		{StateNeedsConfig, StateNeedsConfig},
	}
	for _, tc := range cases {
		e := FileEntry{State: tc.from}
		e.SecondaryClicked()
		if e.State != tc.to {
			t.Errorf("secondary click from %s: got %s, want %s", tc.from, e.State, tc.to)
		}
	}
}

func TestShouldBeListed(t *testing.T) {
	cases := []struct {
		name     string
		state    EntryState
		filename string
		phrase   string
		expanded bool
		want     bool
	}{
		{"plotted always listed", StatePlotted, "a.csv", "zzz", false, true},
		{"active always listed", StateActive, "a.csv", "zzz", false, true},
		{"needs-config always listed", StateNeedsConfig, "a.csv", "zzz", false, true},
		{"previously plotted when expanded", StatePreviouslyPlotted, "a.csv", "zzz", true, true},
		{"previously plotted when collapsed", StatePreviouslyPlotted, "a.csv", "zzz", false, false},
		{"idle collapsed", StateIdle, "a.csv", "", false, false},
		{"idle matches every token", StateIdle, "series_a.csv", "csv ser", true, true},
		{"idle fails one token", StateIdle, "series_a.csv", "csv xyz", true, false},
		{"empty phrase matches", StateIdle, "anything.dat", "", true, true},
	}
	for _, tc := range cases {
		e := FileEntry{Filename: tc.filename, State: tc.state}
		if got := e.ShouldBeListed(tc.phrase, tc.expanded); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestReloadKeepsOldSeriesOnFailure(t *testing.T) {
	e := newFileEntry("gone.csv", "")
	e.DataFile.Data = [][2]float64{{1, 2}}
	e.State = StatePlotted
	var errlog ErrorLog

	e.Reload(t.TempDir(), &errlog)
	if len(e.DataFile.Data) != 1 || e.State != StatePlotted {
		t.Errorf("failed reload must keep the previous series and state")
	}
	if !strings.HasPrefix(errlog.Last(), "ERROR") {
		t.Errorf("failed reload should be reported: %v", errlog.Entries())
	}
}

func TestReloadPicksUpNewContent(t *testing.T) {
	dir := tempFolderWith(t, "data.csv", "1,2\n")
	e := newFileEntry("data.csv", "")
	var errlog ErrorLog
	e.Clicked(dir, &errlog)

	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte("1,2\n3,4\n5,6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	e.Reload(dir, &errlog)
	if len(e.DataFile.Data) != 3 {
		t.Errorf("got %d points after reload, want 3", len(e.DataFile.Data))
	}
}

func TestSanitizeState(t *testing.T) {
	if got := sanitizeState("bogus"); got != StateIdle {
		t.Errorf("unknown state should map to idle, got %s", got)
	}
	if got := sanitizeState(StateActive); got != StateActive {
		t.Errorf("known state must pass through, got %s", got)
	}
}
