package main

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
)

// CSVFile is one data series read from a delimited text file, together with
// the parameters that produced it. Column indices are zero-based; the
// defaults plot the first column against the second.
//
// Data is empty only when ingestion yielded no usable rows, which callers
// treat as an ingestion failure.
type CSVFile struct {
	Filepath    string       `json:"filepath"`
	Data        [][2]float64 `json:"data"`
	Delimiter   byte         `json:"delimiter"`
	CommentChar byte         `json:"comment_char"`
	XCol        int          `json:"xcol"`
	YCol        int          `json:"ycol"`
	SkipHeader  int          `json:"skip_header"`
	SkipFooter  int          `json:"skip_footer"`
}

func defaultCSVFile() CSVFile {
	return CSVFile{
		Delimiter:   ',',
		CommentChar: '#',
		XCol:        0,
		YCol:        1,
	}
}

// Options returns a copy of the ingestion parameters without path or data,
// usable as a template for other entries.
func (c CSVFile) Options() CSVFile {
	opts := c
	opts.Filepath = ""
	opts.Data = nil
	return opts
}

// LoadCSVFile reads the file at path with the ingestion parameters of opts
// and returns a populated series, or nil when the file could not be read or
// no row produced a valid point. All failures, row-level and file-level, are
// reported into errlog; row-level failures do not stop ingestion.
func LoadCSVFile(path string, opts CSVFile, errlog *ErrorLog) *CSVFile {
	f, err := os.Open(path)
	if err != nil {
		errlog.Pushf("ERROR: could not read CSV file %q: %v", path, err)
		return nil
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.Comma = rune(opts.Delimiter)
	rdr.Comment = rune(opts.CommentChar)
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	data, ok := parseRows(rdr, opts, path, errlog)
	if !ok || len(data) == 0 {
		return nil
	}

	out := opts
	out.Filepath = path
	out.Data = data
	return &out
}

type rawRecord struct {
	row    int // 1-based index among non-comment records
	fields []string
}

// parseRows drains the reader and converts the configured columns to points.
// The bool result is false only on a hard reader error (e.g. a delimiter the
// reader rejects); zero collected points with ok=true means the file was
// readable but the configuration matched nothing.
func parseRows(rdr *csv.Reader, opts CSVFile, path string, errlog *ErrorLog) ([][2]float64, bool) {
	var records []rawRecord
	for i := 0; ; i++ {
		fields, err := rdr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			errlog.Pushf("WARNING: could not parse row %d of file %q: %v", i+1, path, err)
			continue
		}
		if err != nil {
			errlog.Pushf("ERROR: could not read CSV file %q: %v", path, err)
			return nil, false
		}
		records = append(records, rawRecord{row: i + 1, fields: fields})
	}

	// Header/footer skips count data records, not comment lines. Skipped
	// records are dropped silently.
	if opts.SkipHeader > 0 {
		if opts.SkipHeader >= len(records) {
			records = nil
		} else {
			records = records[opts.SkipHeader:]
		}
	}
	if opts.SkipFooter > 0 {
		if opts.SkipFooter >= len(records) {
			records = nil
		} else {
			records = records[:len(records)-opts.SkipFooter]
		}
	}

	var data [][2]float64
	for _, rec := range records {
		var (
			x, y       float64
			xerr, yerr error
		)
		xok := opts.XCol >= 0 && opts.XCol < len(rec.fields)
		yok := opts.YCol >= 0 && opts.YCol < len(rec.fields)
		if xok {
			x, xerr = strconv.ParseFloat(rec.fields[opts.XCol], 64)
		}
		if yok {
			y, yerr = strconv.ParseFloat(rec.fields[opts.YCol], 64)
		}
		switch {
		case xok && yok && xerr == nil && yerr == nil:
			data = append(data, [2]float64{x, y})
		case xok && yok && xerr == nil:
			errlog.Pushf("WARNING: y-column %d could not be parsed in entry %d for file %q: %v",
				opts.YCol, rec.row, path, yerr)
		case xok && yok && yerr == nil:
			errlog.Pushf("WARNING: x-column %d could not be parsed in entry %d for file %q: %v",
				opts.XCol, rec.row, path, xerr)
		default:
			errlog.Pushf("WARNING: could not parse columns %d, %d in entry %d for file %q",
				opts.XCol, opts.YCol, rec.row, path)
		}
	}
	return data, true
}
