package burrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBurrow(t *testing.T, depth int) *Burrow {
	t.Helper()
	b, err := New(Standard(), depth)
	require.NoError(t, err)
	return b
}

// mustConfig builds a configuration from letters, rooms listed doorway-first.
func mustConfig(t *testing.T, b *Burrow, hallway string, rooms ...string) Configuration {
	t.Helper()
	tokens := func(s string) []Token {
		ts := make([]Token, len(s))
		for i := 0; i < len(s); i++ {
			if s[i] == '.' {
				continue
			}
			tok, ok := b.Layout().Token(s[i])
			require.True(t, ok, "bad letter %q", s[i])
			ts[i] = tok
		}
		return ts
	}
	rs := make([][]Token, len(rooms))
	for i, r := range rooms {
		rs[i] = tokens(r)
	}
	c, err := b.NewConfiguration(tokens(hallway), rs)
	require.NoError(t, err)
	return c
}

func TestGoal(t *testing.T) {
	for _, depth := range []int{1, 2, 4} {
		b := mustBurrow(t, depth)
		want := mustConfig(t, b, "...........",
			repeat('A', depth), repeat('B', depth), repeat('C', depth), repeat('D', depth))
		assert.Equal(t, want, b.Goal())
		assert.True(t, b.IsGoal(want))
		assert.Empty(t, b.AppendMoves(nil, b.Goal()), "depth %d", depth)
		assert.Zero(t, b.LowerBound(b.Goal()))
	}
}

func repeat(c byte, n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = c
	}
	return string(s)
}

func TestNewConfigurationShape(t *testing.T) {
	b := mustBurrow(t, 2)
	empty := make([]Token, 11)
	room := []Token{Empty, Empty}

	for _, tt := range []struct {
		name    string
		hallway []Token
		rooms   [][]Token
	}{
		{"short hallway", empty[:10], [][]Token{room, room, room, room}},
		{"missing room", empty, [][]Token{room, room, room}},
		{"shallow room", empty, [][]Token{room, room, room, {Empty}}},
		{"unknown token", append([]Token{5}, empty[1:]...), [][]Token{room, room, room, room}},
		{"token on a door", []Token{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, [][]Token{room, room, room, room}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.NewConfiguration(tt.hallway, tt.rooms)
			assert.ErrorIs(t, err, ErrShape)
		})
	}

	other := mustBurrow(t, 3)
	assert.ErrorIs(t, b.Check(other.Goal()), ErrShape)
	assert.NoError(t, b.Check(b.Goal()))
}

func TestNewRejectsDepth(t *testing.T) {
	_, err := New(Standard(), 0)
	assert.ErrorIs(t, err, ErrLayout)
}

func TestAccessors(t *testing.T) {
	b := mustBurrow(t, 2)
	c := mustConfig(t, b, "A.........D", ".B", "CD", "BC", ".A")
	assert.Equal(t, []Token{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4}, b.Hallway(c))
	assert.Equal(t, []Token{Empty, 2}, b.Room(c, 0))
	assert.Equal(t, []Token{3, 4}, b.Room(c, 1))
	assert.Equal(t, []int{11, 2, 2, 2, 2}, b.Counts(c))
	assert.Equal(t, "A.........D.BCDBC.A", c.String())
	assert.Equal(t, 4, b.Rooms())
	assert.Equal(t, 2, b.Depth())
}

func TestSettled(t *testing.T) {
	b := mustBurrow(t, 3)
	c := mustConfig(t, b, "B..........", "...", "..B", ".AB", "DDD")
	assert.True(t, b.Settled(c, 0), "empty room")
	assert.True(t, b.Settled(c, 1), "partly filled with own type")
	assert.False(t, b.Settled(c, 2), "foreigner present")
	assert.True(t, b.Settled(c, 3), "full")
}
