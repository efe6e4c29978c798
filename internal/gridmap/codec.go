package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipSuffix marks map files stored gzip-compressed.
const gzipSuffix = ".gz"

// ErrFormat marks a malformed map file. Every loader failure caused by file
// content wraps it.
var ErrFormat = errors.New("gridmap: malformed map file")

// FormatError describes where a map file failed to parse. Line is 1-based
// and counts the header; Column is 1-based, 0 when the whole line is at fault.
type FormatError struct {
	Line   int
	Column int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("map format: line %d col %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("map format: line %d: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error { return ErrFormat }

// Encoding maps cell states to single characters in a map file.
type Encoding struct {
	Name    string
	symbols [BigFood + 1]rune
}

var (
	// DigitEncoding writes 0=Empty, 1=Wall, 2=BigFood, 3=Food, 4=Start.
	DigitEncoding = Encoding{
		Name: "digit",
		symbols: [BigFood + 1]rune{
			Empty:   '0',
			Wall:    '1',
			BigFood: '2',
			Food:    '3',
			Start:   '4',
		},
	}
	// GlyphEncoding writes ' '=Empty, '+'=Wall, 'O'=BigFood, '.'=Food, 'S'=Start.
	GlyphEncoding = Encoding{
		Name: "glyph",
		symbols: [BigFood + 1]rune{
			Empty:   ' ',
			Wall:    '+',
			BigFood: 'O',
			Food:    '.',
			Start:   'S',
		},
	}
)

// EncodingByName resolves "digit" or "glyph".
func EncodingByName(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DigitEncoding.Name:
		return DigitEncoding, nil
	case GlyphEncoding.Name:
		return GlyphEncoding, nil
	default:
		return Encoding{}, fmt.Errorf("unknown map encoding %q", name)
	}
}

// Symbol returns the character used for s.
func (e Encoding) Symbol(s CellState) rune {
	if int(s) >= len(e.symbols) {
		return e.symbols[Wall]
	}
	return e.symbols[s]
}

// Decode returns the state for character r.
func (e Encoding) Decode(r rune) (CellState, bool) {
	for s, sym := range e.symbols {
		if sym == r {
			return CellState(s), true
		}
	}
	return Empty, false
}

// LoadFile reads a map file from disk. Paths ending in ".gz" are
// decompressed.
func LoadFile(path string, enc Encoding) (*GridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipSuffix) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	m, err := Load(r, enc)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return m, nil
}

// Load parses a map: a "x,y" start header followed by one line per row.
// A Start marker in the grid is stored as Empty and must agree with the
// header. Nothing is returned unless the whole file parses.
func Load(r io.Reader, enc Encoding) (*GridMap, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &FormatError{Line: 1, Reason: "missing start line"}
	}
	start, err := parseStart(strings.TrimRight(sc.Text(), "\r"))
	if err != nil {
		return nil, &FormatError{Line: 1, Reason: err.Error()}
	}

	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, &FormatError{Line: 2, Reason: "no grid rows"}
	}

	cells := make(map[Coord]CellState)
	width := -1
	marker := Coord{X: -1, Y: -1}
	for y, row := range rows {
		line := y + 2
		runes := []rune(row)
		if width < 0 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, &FormatError{Line: line, Reason: fmt.Sprintf("row has %d cells, want %d", len(runes), width)}
		}
		for x, ch := range runes {
			s, ok := enc.Decode(ch)
			if !ok {
				return nil, &FormatError{Line: line, Column: x + 1, Reason: fmt.Sprintf("unknown cell %q for %s encoding", ch, enc.Name)}
			}
			if s == Start {
				if marker.X >= 0 {
					return nil, &FormatError{Line: line, Column: x + 1, Reason: "second start marker"}
				}
				marker = Coord{X: x, Y: y}
			}
			cells[Coord{X: x, Y: y}] = s
		}
	}
	if marker.X >= 0 && marker != start {
		return nil, &FormatError{Line: marker.Y + 2, Column: marker.X + 1, Reason: fmt.Sprintf("start marker at %d,%d disagrees with header %d,%d", marker.X, marker.Y, start.X, start.Y)}
	}
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= len(rows) {
		return nil, &FormatError{Line: 1, Reason: fmt.Sprintf("start %d,%d outside %dx%d grid", start.X, start.Y, width, len(rows))}
	}
	return New(cells, start)
}

// parseStart reads the "x,y" header.
func parseStart(line string) (Coord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("start line %q is not x,y", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("start x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("start y: %w", err)
	}
	return Coord{X: x, Y: y}, nil
}

// Encode writes m in the Load format. The start cell is written as Empty;
// its coordinate only appears in the header. Cells missing inside the
// extents are written as walls.
func (m *GridMap) Encode(w io.Writer, enc Encoding) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d,%d\n", m.start.X, m.start.Y); err != nil {
		return err
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if _, err := bw.WriteRune(enc.Symbol(m.CellState(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile writes m to path, gzip-compressed when path ends in ".gz".
func (m *GridMap) SaveFile(path string, enc Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, gzipSuffix) {
		if err := m.Encode(f, enc); err != nil {
			f.Close()
			return fmt.Errorf("writing %q: %w", path, err)
		}
		return f.Close()
	}

	zw := gzip.NewWriter(f)
	if err := m.Encode(zw, enc); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return f.Close()
}
