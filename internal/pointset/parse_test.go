package pointset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/mincircle/internal/fsutil"
	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var triangle = []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		input  string
	}{
		{"text spaces", FormatText, "0 0\n4 0\n0 4\n"},
		{"text mixed separators and comments", FormatText, "# triangle\n0\t0\n\n4, 0   # right\n0;4"},
		{"auto is text", FormatAuto, "0 0\n4 0\n0 4"},
		{"csv with header", FormatCSV, "x,y\n0,0\n4,0\n0,4\n"},
		{"csv without header", FormatCSV, "0, 0\n4, 0\n# skip\n0, 4\n"},
		{"json objects", FormatJSON, `[{"x":0,"y":0},{"x":4,"y":0},{"x":0,"y":4}]`},
		{"json pairs", FormatJSON, `[[0,0],[4,0],[0,4]]`},
		{"json mixed", FormatJSON, `[[0,0],{"y":0,"x":4},[0,4]]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			if diff := cmp.Diff(triangle, got); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON} {
		in := ""
		if f == FormatJSON {
			in = "[]"
		}
		got, err := Parse(strings.NewReader(in), f)
		require.NoError(t, err, f.String())
		assert.Empty(t, got, f.String())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		format  Format
		input   string
		wantErr string
		is      error
	}{
		{"text one coordinate", FormatText, "1 2\n3\n", "line 2: want 2 coordinates, got 1", nil},
		{"text bad number", FormatText, "1 abc", `line 1: invalid coordinate "abc"`, nil},
		{"text NaN", FormatText, "NaN 1", "line 1", ErrNonFinite},
		{"text Inf", FormatText, "0 0\n1 -Inf", "line 2", ErrNonFinite},
		{"csv Inf", FormatCSV, "x,y\n1,2\n+Inf,2\n", "line 3", ErrNonFinite},
		{"csv three fields", FormatCSV, "x,y\n1,2\n1,2,3\n", "line 3: want 2 coordinates, got 3", nil},
		{"csv header later is data", FormatCSV, "1,2\nx,y\n", `line 2: invalid coordinate "x"`, nil},
		{"json not array", FormatJSON, `{"x":1}`, "failed to parse JSON", nil},
		{"json short pair", FormatJSON, `[[1]]`, "element 0: want 2 coordinates, got 1", nil},
		{"json missing y", FormatJSON, `[[1,2],{"x":1}]`, "element 1: missing x or y", nil},
		{"json wrong type", FormatJSON, `["a"]`, "element 0", nil},
		{"unknown format", Format(42), "", "unknown format", ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), tc.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			if tc.is != nil {
				assert.True(t, errors.Is(err, tc.is), "errors.Is(%v, %v)", err, tc.is)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	m := fsutil.NewMemoryFileSystem()
	m.WriteFile("sets/tri.csv", []byte("x,y\n0,0\n4,0\n0,4\n"))
	m.WriteFile("sets/tri.json", []byte(`[[0,0],[4,0],[0,4]]`))
	m.WriteFile("sets/tri.pts", []byte("0 0\n4 0\n0 4\n"))
	m.WriteFile("sets/bad.csv", []byte("1,2,3\n"))

	for _, name := range []string{"sets/tri.csv", "sets/tri.json", "sets/tri.pts"} {
		got, err := Load(m, name, FormatAuto)
		require.NoError(t, err, name)
		assert.Equal(t, triangle, got, name)
	}

	// Explicit format overrides the extension.
	m.WriteFile("sets/space.csv", []byte("0 0\n4 0\n0 4\n"))
	got, err := Load(m, "sets/space.csv", FormatText)
	require.NoError(t, err)
	assert.Equal(t, triangle, got)

	_, err = Load(m, "sets/bad.csv", FormatAuto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sets/bad.csv")

	_, err = Load(m, "sets/missing.csv", FormatAuto)
	assert.ErrorContains(t, err, "failed to open point file")
}

func TestWriteRoundTrip(t *testing.T) {
	pts := []geom.Point{{X: 0.5, Y: -1.25}, {X: 1e6, Y: 3}, {X: -7, Y: 0}}
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, pts, f))
			got, err := Parse(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, pts, got)
		})
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())

	assert.ErrorIs(t, Write(&buf, pts, Format(9)), ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatAuto,
		"auto": FormatAuto,
		"CSV":  FormatCSV,
		"json": FormatJSON,
		"text": FormatText,
		"txt":  FormatText,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatCSV, FormatFromPath("a/b.CSV"))
	assert.Equal(t, FormatJSON, FormatFromPath("p.json"))
	assert.Equal(t, FormatText, FormatFromPath("p.xyz"))
	assert.Equal(t, FormatText, FormatFromPath("noext"))
}
