package main

import "strconv"

// FloatField is a text-backed numeric value. The string is the source of
// truth: it keeps exactly what the user typed, including half-finished edits
// like "1.2e" that don't parse yet. The numeric value is derived on demand
// and never cached.
type FloatField struct {
	Input string `json:"input"`
}

func newScaleField() FloatField  { return FloatField{Input: "1.0"} }
func newOffsetField() FloatField { return FloatField{Input: "0.0"} }

func (f FloatField) Parse() (float64, error) {
	return strconv.ParseFloat(f.Input, 64)
}

// ParseOr returns the parsed value, or fallback when the current text is not
// a valid number.
func (f FloatField) ParseOr(fallback float64) float64 {
	v, err := f.Parse()
	if err != nil {
		return fallback
	}
	return v
}

// Set re-serializes a numeric result into the field using the shortest
// round-tripping representation, the same text typing the number would give.
func (f *FloatField) Set(v float64) {
	f.Input = strconv.FormatFloat(v, 'g', -1, 64)
}
