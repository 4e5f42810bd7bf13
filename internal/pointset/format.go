// Package pointset reads, generates and tidies the point sets handed to the
// enclosing-circle solver.
package pointset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned for unrecognised format names.
	ErrUnknownFormat = errors.New("pointset: unknown format")
	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("pointset: non-finite coordinate")
)

// Format is an input encoding.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatText is whitespace- or comma-separated "x y" pairs, one per line.
	FormatText
	// FormatCSV is one "x,y" record per line with an optional header.
	FormatCSV
	// FormatJSON is an array of {"x":..,"y":..} objects or [x, y] pairs.
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto: "auto",
	FormatText: "text",
	FormatCSV:  "csv",
	FormatJSON: "json",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a name to a Format. The empty string means FormatAuto.
func ParseFormat(name string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	switch want {
	case "":
		return FormatAuto, nil
	case "txt":
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath guesses the format from the file extension. Anything other
// than .csv or .json is read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}
