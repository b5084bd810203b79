package diagram

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/geofduf/burrow/internal/burrow"
)

// Render draws c as a diagram that Parse accepts.
func Render(b *burrow.Burrow, c burrow.Configuration) string {
	l := b.Layout()
	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", l.Hallway+2))
	sb.WriteByte('\n')
	sb.WriteByte('#')
	for _, t := range b.Hallway(c) {
		sb.WriteByte(l.Letter(t))
	}
	sb.WriteString("#\n")

	rooms := make([][]burrow.Token, b.Rooms())
	for r := range rooms {
		rooms[r] = b.Room(c, r)
	}
	cells := make([]byte, b.Rooms())
	for d := 0; d < b.Depth(); d++ {
		for r := range rooms {
			cells[r] = l.Letter(rooms[r][d])
		}
		sb.WriteString(row(l, 1, cells, d == 0))
		sb.WriteByte('\n')
	}
	sb.WriteString(row(l, 1, nil, false))
	sb.WriteByte('\n')
	return sb.String()
}

// row draws one line below the hallway. The first row spans the whole width;
// the others only enclose the rooms. A nil cells draws the bottom wall.
func row(l burrow.Layout, offset int, cells []byte, first bool) string {
	lo := slices.Min(l.Doors) + offset - 1
	hi := slices.Max(l.Doors) + offset + 1
	if first {
		lo, hi = offset-1, offset+l.Hallway
	}
	line := []byte(strings.Repeat(" ", lo) + strings.Repeat("#", hi-lo+1))
	for r, d := range l.Doors {
		if cells != nil {
			line[offset+d] = cells[r]
		}
	}
	return string(line)
}

// Rows inserted by Unfold, as room indexes of the amphipods from left to right.
var unfoldRows = [][]int{
	{3, 2, 1, 0},
	{3, 1, 0, 2},
}

// ErrUnfold is returned when a diagram cannot be unfolded.
var ErrUnfold = errors.New("diagram cannot be unfolded")

// Unfold returns the lines of the deeper burrow used in part two of the puzzle:
// two fixed rows are inserted between the first and second room rows.
func Unfold(lines []string, l burrow.Layout) ([]string, error) {
	if len(l.Doors) != len(unfoldRows[0]) {
		return nil, fmt.Errorf("%w: need %d rooms, layout has %d", ErrUnfold, len(unfoldRows[0]), len(l.Doors))
	}
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 lines, got %d", ErrUnfold, len(lines))
	}
	offset := strings.IndexByte(lines[1], '#') + 1
	if offset == 0 {
		return nil, fmt.Errorf("%w: hallway line %q has no walls", ErrUnfold, lines[1])
	}
	out := make([]string, 0, len(lines)+len(unfoldRows))
	out = append(out, lines[:3]...)
	for _, rooms := range unfoldRows {
		cells := make([]byte, len(rooms))
		for i, r := range rooms {
			cells[i] = l.Letters[r]
		}
		out = append(out, row(l, offset, cells, false))
	}
	return append(out, lines[3:]...), nil
}
