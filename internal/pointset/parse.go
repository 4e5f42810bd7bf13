package pointset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/mincircle/internal/fsutil"
	"github.com/banshee-data/mincircle/internal/geom"
)

// Load opens path on fsys and parses it. FormatAuto resolves through
// FormatFromPath.
func Load(fsys fsutil.FileSystem, path string, format Format) ([]geom.Point, error) {
	if format == FormatAuto {
		format = FormatFromPath(path)
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point file: %w", err)
	}
	defer f.Close()

	pts, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

// Parse reads a point set from r. FormatAuto is treated as FormatText.
func Parse(r io.Reader, format Format) ([]geom.Point, error) {
	switch format {
	case FormatAuto, FormatText:
		return parseText(r)
	case FormatCSV:
		return parseCSV(r)
	case FormatJSON:
		return parseJSON(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func parseText(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == ';'
		})
		p, err := pointFromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("pointset: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read: %w", err)
	}
	return pts, nil
}

func parseCSV(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var pts []geom.Point
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointset: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		p, err := pointFromFields(rec)
		if err != nil {
			return nil, fmt.Errorf("pointset: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func isHeader(rec []string) bool {
	return len(rec) == 2 &&
		strings.EqualFold(strings.TrimSpace(rec[0]), "x") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "y")
}

func pointFromFields(fields []string) (geom.Point, error) {
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(fields))
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return geom.Point{}, err
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return geom.Point{}, err
	}
	return finitePoint(geom.Pt(x, y))
}

// finitePoint rejects points with a NaN or infinite coordinate.
func finitePoint(p geom.Point) (geom.Point, error) {
	if !p.IsFinite() {
		return geom.Point{}, fmt.Errorf("%w: %v", ErrNonFinite, p)
	}
	return p, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return v, nil
}

func parseJSON(r io.Reader) ([]geom.Point, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("pointset: failed to parse JSON: %w", err)
	}

	pts := make([]geom.Point, 0, len(raw))
	for i, msg := range raw {
		p, err := pointFromJSON(msg)
		if err != nil {
			return nil, fmt.Errorf("pointset: element %d: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func pointFromJSON(msg json.RawMessage) (geom.Point, error) {
	var pair []float64
	if err := json.Unmarshal(msg, &pair); err == nil {
		if len(pair) != 2 {
			return geom.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(pair))
		}
		return finitePoint(geom.Pt(pair[0], pair[1]))
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal(msg, &obj); err != nil {
		return geom.Point{}, fmt.Errorf("want [x, y] or {\"x\":..,\"y\":..}: %w", err)
	}
	if obj.X == nil || obj.Y == nil {
		return geom.Point{}, errors.New("missing x or y")
	}
	return finitePoint(geom.Pt(*obj.X, *obj.Y))
}

// Write emits pts in the given format. FormatAuto writes text.
func Write(w io.Writer, pts []geom.Point, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if pts == nil {
			pts = []geom.Point{}
		}
		return enc.Encode(pts)
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"x", "y"}); err != nil {
			return err
		}
		for _, p := range pts {
			if err := cw.Write([]string{formatCoord(p.X), formatCoord(p.Y)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatAuto, FormatText:
		bw := bufio.NewWriter(w)
		for _, p := range pts {
			fmt.Fprintf(bw, "%s %s\n", formatCoord(p.X), formatCoord(p.Y))
		}
		return bw.Flush()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
