package burrow

// LowerBound returns an estimate of the cost still needed to reach the goal
// from c that never exceeds the true cost. Each amphipod is priced on its own,
// ignoring the others:
//
//   - in the hallway: walk to its door, then at least one step in;
//   - in a foreign room: climb out, walk to its door, one step in;
//   - in its own room above a foreigner: climb out, step aside and back, one
//     step in.
//
// Amphipods resting in their own room with no foreigner below cost nothing.
func (b *Burrow) LowerBound(c Configuration) int {
	var total int
	for h := 0; h < b.layout.Hallway; h++ {
		t := Token(c.cells[h])
		if t == Empty {
			continue
		}
		r := b.home(t)
		total += (absDiff(h, b.layout.Doors[r]) + 1) * b.layout.Costs[r]
	}
	for r, door := range b.layout.Doors {
		// Walk from the back so we know whether a foreigner sits deeper.
		blocked := false
		for d := b.depth - 1; d >= 0; d-- {
			t := Token(c.cells[b.slot(r, d)])
			if t == Empty {
				continue
			}
			home := b.home(t)
			switch {
			case home != r:
				blocked = true
				total += (d + 1 + absDiff(door, b.layout.Doors[home]) + 1) * b.layout.Costs[home]
			case blocked:
				total += (d + 4) * b.layout.Costs[home]
			}
		}
	}
	return total
}
