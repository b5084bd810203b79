// Package burrow models the amphipod burrow: a hallway above a row of rooms,
// and the configurations of amphipods inside it.
//
// A Configuration is an immutable comparable value, so it can be used directly
// as a map key. All interpretation of its contents goes through a Burrow, which
// knows the layout and the room depth.
package burrow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShape is wrapped by errors about configurations that do not fit a burrow.
var ErrShape = errors.New("configuration does not fit burrow")

// A Token is one amphipod, identified by its type. The zero Token is an empty
// cell; token i+1 belongs in room i.
type Token uint8

// Empty marks a free hallway cell or room slot.
const Empty Token = 0

// HomeOf returns the token type whose home is room.
func HomeOf(room int) Token {
	return Token(room + 1)
}

func (t Token) room() int {
	return int(t) - 1
}

// A Configuration is a snapshot of the whole burrow: every hallway cell followed
// by every room slot, rooms in order, each room from the doorway to the back.
// Two configurations are equal iff all cells match.
type Configuration struct {
	cells string
}

// String returns a compact form: hallway, then each room doorway-first, with
// no separators. Types are shown as A, B, C, ... regardless of layout.
func (c Configuration) String() string {
	var b strings.Builder
	for i := 0; i < len(c.cells); i++ {
		t := Token(c.cells[i])
		if t == Empty {
			b.WriteByte('.')
		} else {
			b.WriteByte('A' + byte(t.room()))
		}
	}
	return b.String()
}

// A Burrow holds everything that is fixed during a search: the layout, the room
// depth and the goal configuration.
type Burrow struct {
	layout Layout
	depth  int
	isDoor []bool
	goal   Configuration
}

// New returns a burrow with the given layout and rooms of depth slots.
func New(layout Layout, depth int) (*Burrow, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth %d", ErrLayout, depth)
	}
	b := &Burrow{
		layout: layout,
		depth:  depth,
		isDoor: make([]bool, layout.Hallway),
	}
	for _, d := range layout.Doors {
		b.isDoor[d] = true
	}
	cells := make([]byte, b.size())
	for r := range layout.Doors {
		for d := 0; d < depth; d++ {
			cells[b.slot(r, d)] = byte(HomeOf(r))
		}
	}
	b.goal = Configuration{string(cells)}
	return b, nil
}

// Layout returns the burrow geometry.
func (b *Burrow) Layout() Layout { return b.layout }

// Depth returns the number of slots in each room.
func (b *Burrow) Depth() int { return b.depth }

// Rooms returns the number of rooms.
func (b *Burrow) Rooms() int { return len(b.layout.Doors) }

func (b *Burrow) size() int {
	return b.layout.Hallway + b.Rooms()*b.depth
}

// slot returns the cell index of room r at depth d.
func (b *Burrow) slot(r, d int) int {
	return b.layout.Hallway + r*b.depth + d
}

// NewConfiguration builds a configuration from hallway cells and rooms listed
// doorway-first. It checks the shape only: token counts are not verified, but
// nothing may stand on a door cell.
func (b *Burrow) NewConfiguration(hallway []Token, rooms [][]Token) (Configuration, error) {
	if len(hallway) != b.layout.Hallway {
		return Configuration{}, fmt.Errorf("%w: hallway has %d cells, want %d", ErrShape, len(hallway), b.layout.Hallway)
	}
	if len(rooms) != b.Rooms() {
		return Configuration{}, fmt.Errorf("%w: %d rooms, want %d", ErrShape, len(rooms), b.Rooms())
	}
	cells := make([]byte, 0, b.size())
	for h, t := range hallway {
		if t != Empty && b.isDoor[h] {
			return Configuration{}, fmt.Errorf("%w: token %d stands on door cell %d", ErrShape, t, h)
		}
		cells = append(cells, byte(t))
	}
	for r, room := range rooms {
		if len(room) != b.depth {
			return Configuration{}, fmt.Errorf("%w: room %d has %d slots, want %d", ErrShape, r, len(room), b.depth)
		}
		for _, t := range room {
			cells = append(cells, byte(t))
		}
	}
	for i, v := range cells {
		if int(v) > b.Rooms() {
			return Configuration{}, fmt.Errorf("%w: unknown token %d at cell %d", ErrShape, v, i)
		}
	}
	return Configuration{string(cells)}, nil
}

// Check reports whether c has this burrow's shape.
func (b *Burrow) Check(c Configuration) error {
	if len(c.cells) != b.size() {
		return fmt.Errorf("%w: %d cells, want %d", ErrShape, len(c.cells), b.size())
	}
	return nil
}

// Goal returns the sorted configuration: empty hallway, every room full of its
// own type.
func (b *Burrow) Goal() Configuration { return b.goal }

// IsGoal reports whether c is the goal configuration.
func (b *Burrow) IsGoal(c Configuration) bool { return c == b.goal }

// Hallway returns a copy of the hallway cells of c.
func (b *Burrow) Hallway(c Configuration) []Token {
	h := make([]Token, b.layout.Hallway)
	for i := range h {
		h[i] = Token(c.cells[i])
	}
	return h
}

// Room returns a copy of room r of c, doorway-first.
func (b *Burrow) Room(c Configuration, r int) []Token {
	room := make([]Token, b.depth)
	for d := range room {
		room[d] = Token(c.cells[b.slot(r, d)])
	}
	return room
}

// Counts returns the number of tokens of each type in c. Index 0 counts the
// empty cells.
func (b *Burrow) Counts(c Configuration) []int {
	counts := make([]int, b.Rooms()+1)
	for i := 0; i < len(c.cells); i++ {
		counts[c.cells[i]]++
	}
	return counts
}

// Settled reports whether room r only holds empty slots and its own type.
// Nothing ever leaves a settled room.
func (b *Burrow) Settled(c Configuration, r int) bool {
	home := HomeOf(r)
	for d := 0; d < b.depth; d++ {
		if t := Token(c.cells[b.slot(r, d)]); t != Empty && t != home {
			return false
		}
	}
	return true
}
