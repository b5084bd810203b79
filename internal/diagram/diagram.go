// Package diagram reads and writes burrow diagrams such as:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The second line is the hallway. Every following line up to the bottom wall is
// one row of room slots, the first row being nearest the hallway. A room is read
// in the column right below its door.
package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/geofduf/burrow/internal/burrow"
)

// ErrInvalid is wrapped by all diagram format errors.
var ErrInvalid = errors.New("invalid diagram")

// A Diagram is a parsed burrow and its starting configuration.
type Diagram struct {
	Burrow *burrow.Burrow
	Start  burrow.Configuration
}

// Parse reads a diagram drawn for layout l.
func Parse(r io.Reader, l burrow.Layout) (*Diagram, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, l)
}

// ReadLines returns the lines of r without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseLines is like Parse for a diagram already split into lines.
func ParseLines(lines []string, l burrow.Layout) (*Diagram, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 lines, got %d", ErrInvalid, len(lines))
	}
	if top := strings.TrimSpace(lines[0]); top == "" || strings.Trim(top, "#") != "" {
		return nil, fmt.Errorf("%w: line 1: top wall %q is not all '#'", ErrInvalid, lines[0])
	}

	offset, hallway, err := parseHallway(lines[1], l)
	if err != nil {
		return nil, err
	}

	var rows [][]burrow.Token
	wall := false
	for i, line := range lines[2:] {
		if wall {
			return nil, fmt.Errorf("%w: line %d: content after bottom wall", ErrInvalid, i+3)
		}
		row, isWall, err := parseRow(line, offset, l)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrInvalid, i+3, err)
		}
		if isWall {
			wall = true
			continue
		}
		rows = append(rows, row)
	}
	if !wall {
		return nil, fmt.Errorf("%w: missing bottom wall", ErrInvalid)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no room rows", ErrInvalid)
	}

	b, err := burrow.New(l, len(rows))
	if err != nil {
		return nil, err
	}
	rooms := make([][]burrow.Token, b.Rooms())
	for r := range rooms {
		for _, row := range rows {
			rooms[r] = append(rooms[r], row[r])
		}
	}
	start, err := b.NewConfiguration(hallway, rooms)
	if err != nil {
		return nil, err
	}
	counts := b.Counts(start)
	for r := 0; r < b.Rooms(); r++ {
		if n := counts[burrow.HomeOf(r)]; n != b.Depth() {
			return nil, fmt.Errorf("%w: %d amphipods of type %c, want %d", ErrInvalid, n, l.Letters[r], b.Depth())
		}
	}
	return &Diagram{Burrow: b, Start: start}, nil
}

func parseHallway(line string, l burrow.Layout) (int, []burrow.Token, error) {
	i := strings.IndexByte(line, '#')
	j := strings.LastIndexByte(line, '#')
	if i < 0 || i == j {
		return 0, nil, fmt.Errorf("%w: hallway line %q has no walls", ErrInvalid, line)
	}
	cells := line[i+1 : j]
	if len(cells) != l.Hallway {
		return 0, nil, fmt.Errorf("%w: hallway has %d cells, want %d", ErrInvalid, len(cells), l.Hallway)
	}
	hallway := make([]burrow.Token, len(cells))
	for k := 0; k < len(cells); k++ {
		t, ok := cell(cells[k], l)
		if !ok {
			return 0, nil, fmt.Errorf("%w: unrecognized character %q in hallway", ErrInvalid, cells[k])
		}
		if t != burrow.Empty && slices.Contains(l.Doors, k) {
			return 0, nil, fmt.Errorf("%w: amphipod %c stands on a door at hallway cell %d", ErrInvalid, cells[k], k)
		}
		hallway[k] = t
	}
	return i + 1, hallway, nil
}

// parseRow reads one row of room slots. A row where every room column is a
// wall is the bottom of the burrow.
func parseRow(line string, offset int, l burrow.Layout) ([]burrow.Token, bool, error) {
	columns := make(map[int]bool)
	for _, d := range l.Doors {
		columns[offset+d] = true
	}
	for k := 0; k < len(line); k++ {
		if c := line[k]; !columns[k] && c != '#' && c != ' ' {
			return nil, false, fmt.Errorf("unrecognized character %q at column %d", c, k+1)
		}
	}

	row := make([]burrow.Token, len(l.Doors))
	walls := 0
	for r, d := range l.Doors {
		k := offset + d
		if k >= len(line) {
			return nil, false, fmt.Errorf("row too short for room %d", r)
		}
		if line[k] == '#' {
			walls++
			continue
		}
		t, ok := cell(line[k], l)
		if !ok {
			return nil, false, fmt.Errorf("unrecognized character %q in room %d", line[k], r)
		}
		row[r] = t
	}
	switch walls {
	case 0:
		return row, false, nil
	case len(l.Doors):
		return nil, true, nil
	default:
		return nil, false, errors.New("rooms have different depths")
	}
}

func cell(c byte, l burrow.Layout) (burrow.Token, bool) {
	if c == '.' {
		return burrow.Empty, true
	}
	return l.Token(c)
}
