// Package form holds the editable draft rows and turns them into a committed
// location list on submit.
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"geotrack/internal/geom"
)

type Field int

const (
	FieldName Field = iota
	FieldLatitude
	FieldLongitude
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldLatitude:
		return "latitude"
	case FieldLongitude:
		return "longitude"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// DraftEntry is one editable row of raw, unvalidated text.
type DraftEntry struct {
	Name          string
	LatitudeText  string
	LongitudeText string
}

var errNotFinite = errors.New("not a finite number")

// ValidationError reports the first coordinate field that failed to parse.
type ValidationError struct {
	Index int
	Field Field
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Form is a fixed-size list of draft rows addressed by index.
type Form struct {
	entries []DraftEntry
}

// New creates a form with exactly n rows. Seed values fill the first rows;
// extra seed entries are ignored and missing ones stay empty.
func New(n int, seed []DraftEntry) *Form {
	if n < 1 {
		panic(fmt.Sprintf("form: row count must be positive, got %d", n))
	}
	f := &Form{entries: make([]DraftEntry, n)}
	copy(f.entries, seed)
	return f
}

func (f *Form) Len() int { return len(f.entries) }

func (f *Form) Entry(i int) DraftEntry {
	f.mustIndex(i)
	return f.entries[i]
}

// Entries returns a copy of the current drafts.
func (f *Form) Entries() []DraftEntry {
	out := make([]DraftEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// UpdateField replaces one field of one row. An out-of-range index or an
// unknown field is a programming error and panics.
func (f *Form) UpdateField(index int, field Field, value string) {
	f.mustIndex(index)
	e := &f.entries[index]
	switch field {
	case FieldName:
		e.Name = value
	case FieldLatitude:
		e.LatitudeText = value
	case FieldLongitude:
		e.LongitudeText = value
	default:
		panic(fmt.Sprintf("form: unknown field %v", field))
	}
}

// SeedFrom writes up to Len() locations into the drafts, row by row.
// Rows beyond len(locs) keep their current text.
func (f *Form) SeedFrom(locs []geom.Location) int {
	n := min(len(locs), len(f.entries))
	for i := 0; i < n; i++ {
		f.UpdateField(i, FieldName, locs[i].Name)
		f.UpdateField(i, FieldLatitude, geom.FormatCoord(locs[i].Lat))
		f.UpdateField(i, FieldLongitude, geom.FormatCoord(locs[i].Lon))
	}
	return n
}

// Submit parses every row. The first unparsable coordinate aborts the whole
// submission with a *ValidationError; the drafts are never modified.
func (f *Form) Submit() (geom.LocationList, error) {
	locs := make(geom.LocationList, 0, len(f.entries))
	for i, e := range f.entries {
		lat, err := parseCoord(e.LatitudeText)
		if err != nil {
			return nil, &ValidationError{Index: i, Field: FieldLatitude, Value: e.LatitudeText, Err: err}
		}
		lon, err := parseCoord(e.LongitudeText)
		if err != nil {
			return nil, &ValidationError{Index: i, Field: FieldLongitude, Value: e.LongitudeText, Err: err}
		}
		locs = append(locs, geom.Location{Name: e.Name, Lat: lat, Lon: lon})
	}
	return locs, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func (f *Form) mustIndex(i int) {
	if i < 0 || i >= len(f.entries) {
		panic(fmt.Sprintf("form: row index %d out of range [0,%d)", i, len(f.entries)))
	}
}
