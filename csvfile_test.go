package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSVFileTolerantIngestion(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,2\n#comment\n3,x\n4,5\n")
	var errlog ErrorLog

	got := LoadCSVFile(path, defaultCSVFile(), &errlog)
	if got == nil {
		t.Fatal("expected a loaded series, got nil")
	}
	want := [][2]float64{{1, 2}, {4, 5}}
	if len(got.Data) != len(want) {
		t.Fatalf("got %d points, want %d", len(got.Data), len(want))
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got.Data[i], want[i])
		}
	}
	if errlog.Len() != 1 {
		t.Fatalf("got %d log entries, want 1: %v", errlog.Len(), errlog.Entries())
	}
	msg := errlog.Last()
	if !strings.HasPrefix(msg, "WARNING") {
		t.Errorf("row failure should warn, not error: %q", msg)
	}
	if !strings.Contains(msg, "y-column 1") || !strings.Contains(msg, "entry 2") {
		t.Errorf("warning should name column and entry: %q", msg)
	}
}

func TestLoadCSVFileMissingFile(t *testing.T) {
	var errlog ErrorLog
	got := LoadCSVFile(filepath.Join(t.TempDir(), "absent.csv"), defaultCSVFile(), &errlog)
	if got != nil {
		t.Fatalf("expected nil for a missing file, got %+v", got)
	}
	if errlog.Len() != 1 || !strings.HasPrefix(errlog.Last(), "ERROR: could not read CSV file") {
		t.Errorf("unexpected log: %v", errlog.Entries())
	}
}

func TestLoadCSVFileNoUsableRows(t *testing.T) {
	path := writeTemp(t, "junk.csv", "a,b\nc,d\n")
	var errlog ErrorLog
	got := LoadCSVFile(path, defaultCSVFile(), &errlog)
	if got != nil {
		t.Fatalf("expected nil when no row yields a point, got %+v", got)
	}
	if errlog.Len() != 2 {
		t.Errorf("expected one warning per bad row, got %v", errlog.Entries())
	}
}

func TestLoadCSVFileSkipHeaderFooter(t *testing.T) {
	path := writeTemp(t, "data.csv", "x,y\n1,10\n2,20\n3,30\ntotal,60\n")
	opts := defaultCSVFile()
	opts.SkipHeader = 1
	opts.SkipFooter = 1
	var errlog ErrorLog

	got := LoadCSVFile(path, opts, &errlog)
	if got == nil {
		t.Fatal("expected a loaded series, got nil")
	}
	want := [][2]float64{{1, 10}, {2, 20}, {3, 30}}
	if len(got.Data) != len(want) {
		t.Fatalf("got %v, want %v", got.Data, want)
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got.Data[i], want[i])
		}
	}
	// Skipped records must not produce warnings.
	if errlog.Len() != 0 {
		t.Errorf("unexpected log entries: %v", errlog.Entries())
	}
}

func TestLoadCSVFileSkipEverything(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,2\n3,4\n")
	opts := defaultCSVFile()
	opts.SkipHeader = 5
	var errlog ErrorLog
	if got := LoadCSVFile(path, opts, &errlog); got != nil {
		t.Fatalf("expected nil when skips drop every record, got %+v", got)
	}
}

func TestLoadCSVFileCustomDelimiterAndComment(t *testing.T) {
	path := writeTemp(t, "data.txt", "%% header\n1;2\n2;4\n")
	opts := defaultCSVFile()
	opts.Delimiter = ';'
	opts.CommentChar = '%'
	var errlog ErrorLog

	got := LoadCSVFile(path, opts, &errlog)
	if got == nil {
		t.Fatal("expected a loaded series, got nil")
	}
	if len(got.Data) != 2 || got.Data[1] != [2]float64{2, 4} {
		t.Errorf("got %v", got.Data)
	}
	if got.Delimiter != ';' || got.CommentChar != '%' {
		t.Errorf("result should carry the parameters used: %+v", got)
	}
}

func TestLoadCSVFileColumnSelection(t *testing.T) {
	path := writeTemp(t, "data.csv", "skip,1,10\nskip,2,20\n")
	opts := defaultCSVFile()
	opts.XCol = 1
	opts.YCol = 2
	var errlog ErrorLog

	got := LoadCSVFile(path, opts, &errlog)
	if got == nil {
		t.Fatal("expected a loaded series, got nil")
	}
	if got.Data[0] != [2]float64{1, 10} || got.Data[1] != [2]float64{2, 20} {
		t.Errorf("got %v", got.Data)
	}
}

func TestLoadCSVFileColumnOutOfRange(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,2\n")
	opts := defaultCSVFile()
	opts.YCol = 7
	var errlog ErrorLog

	if got := LoadCSVFile(path, opts, &errlog); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if !strings.Contains(errlog.Last(), "could not parse columns 0, 7") {
		t.Errorf("unexpected warning: %q", errlog.Last())
	}
}

func TestLoadCSVFileMalformedRowContinues(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,2\nbad\"quote,3\n5,6\n")
	var errlog ErrorLog

	got := LoadCSVFile(path, defaultCSVFile(), &errlog)
	if got == nil {
		t.Fatal("expected a loaded series, got nil")
	}
	if len(got.Data) != 2 || got.Data[0] != [2]float64{1, 2} || got.Data[1] != [2]float64{5, 6} {
		t.Errorf("got %v", got.Data)
	}
	if errlog.Len() != 1 || !strings.Contains(errlog.Last(), "could not parse row 2") {
		t.Errorf("unexpected log: %v", errlog.Entries())
	}
}

func TestOptionsStripsPathAndData(t *testing.T) {
	c := CSVFile{Filepath: "a.csv", Data: [][2]float64{{1, 2}}, Delimiter: ';', XCol: 3}
	opts := c.Options()
	if opts.Filepath != "" || opts.Data != nil {
		t.Errorf("options should drop path and data: %+v", opts)
	}
	if opts.Delimiter != ';' || opts.XCol != 3 {
		t.Errorf("options should keep parameters: %+v", opts)
	}
}
