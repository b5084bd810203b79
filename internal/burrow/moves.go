package burrow

import "fmt"

// A Move is one edge of the configuration graph: a single amphipod going from
// the hallway into its room, or from a room to a hallway stop.
type Move struct {
	Next Configuration
	Cost int
}

// AppendMoves appends every legal move from c to dst and returns the extended
// slice. Hallway to room moves come first, by hallway position, followed by
// room to hallway moves, room by room, left stops before right stops.
//
// Amphipods never move directly from one room to another; that takes two moves.
func (b *Burrow) AppendMoves(dst []Move, c Configuration) []Move {

	for h := 0; h < b.layout.Hallway; h++ {
		t := Token(c.cells[h])
		if t == Empty {
			continue
		}
		r := b.home(t)
		door := b.layout.Doors[r]
		if !b.pathClear(c, h, door) {
			continue
		}
		d, ok := b.entry(c, r)
		if !ok {
			continue
		}
		cost := (absDiff(h, door) + d + 1) * b.layout.Costs[r]
		dst = append(dst, Move{Next: c.move(h, b.slot(r, d)), Cost: cost})
	}

	for r, door := range b.layout.Doors {
		if b.Settled(c, r) {
			continue
		}
		d, t := b.top(c, r)
		if t == Empty {
			continue
		}
		src := b.slot(r, d)
		step := b.layout.Costs[b.home(t)]
		for h := door - 1; h >= 0 && c.cells[h] == byte(Empty); h-- {
			if !b.isDoor[h] {
				dst = append(dst, Move{Next: c.move(src, h), Cost: (d + 1 + door - h) * step})
			}
		}
		for h := door + 1; h < b.layout.Hallway && c.cells[h] == byte(Empty); h++ {
			if !b.isDoor[h] {
				dst = append(dst, Move{Next: c.move(src, h), Cost: (d + 1 + h - door) * step})
			}
		}
	}

	return dst
}

// home returns the room of t. A token without a room means the configuration
// was corrupted, which is a bug in the caller.
func (b *Burrow) home(t Token) int {
	r := t.room()
	if r < 0 || r >= b.Rooms() {
		panic(fmt.Sprintf("burrow: token %d has no room among %d", t, b.Rooms()))
	}
	return r
}

// Verify that every hallway cell strictly between src and dst is free.
func (b *Burrow) pathClear(c Configuration, src, dst int) bool {
	if src > dst {
		src, dst = dst, src
	}
	for h := src + 1; h < dst; h++ {
		if c.cells[h] != byte(Empty) {
			return false
		}
	}
	return true
}

// entry returns the deepest empty slot of room r, provided the room holds no
// foreign amphipod.
func (b *Burrow) entry(c Configuration, r int) (int, bool) {
	if !b.Settled(c, r) {
		return 0, false
	}
	for d := b.depth - 1; d >= 0; d-- {
		if Token(c.cells[b.slot(r, d)]) == Empty {
			return d, true
		}
	}
	return 0, false
}

// top returns the shallowest occupied slot of room r and its token.
func (b *Burrow) top(c Configuration, r int) (int, Token) {
	for d := 0; d < b.depth; d++ {
		if t := Token(c.cells[b.slot(r, d)]); t != Empty {
			return d, t
		}
	}
	return 0, Empty
}

// move returns a copy of c with the token at cell from moved to cell to.
func (c Configuration) move(from, to int) Configuration {
	cells := []byte(c.cells)
	cells[to], cells[from] = cells[from], byte(Empty)
	return Configuration{string(cells)}
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
