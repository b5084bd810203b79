package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofduf/burrow/internal/burrow"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func tokens(t *testing.T, s string) []burrow.Token {
	t.Helper()
	l := burrow.Standard()
	ts := make([]burrow.Token, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			continue
		}
		tok, ok := l.Token(s[i])
		require.True(t, ok)
		ts[i] = tok
	}
	return ts
}

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(example), burrow.Standard())
	require.NoError(t, err)
	b := d.Burrow
	assert.Equal(t, 2, b.Depth())
	assert.Equal(t, tokens(t, "..........."), b.Hallway(d.Start))
	for r, want := range []string{"BA", "CD", "BC", "DA"} {
		assert.Equal(t, tokens(t, want), b.Room(d.Start, r), "room %d", r)
	}
}

func TestParseCRLFAndTrailingBlank(t *testing.T) {
	src := strings.ReplaceAll(example, "\n", "\r\n") + "\r\n\r\n"
	d, err := Parse(strings.NewReader(src), burrow.Standard())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Burrow.Depth())
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		diagram string
	}{
		{"too short", "#############\n#...........#\n###B#C#B#D###\n"},
		{"hallway length", "###########\n#.........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"no walls", "#############\n...........\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"bad letter in room", "#############\n#...........#\n###B#C#E#D###\n  #A#D#C#A#\n  #########\n"},
		{"bad letter in hallway", "#############\n#....x......#\n###B#C#.#D###\n  #A#D#C#A#\n  #########\n"},
		{"stray character", "#############\n#...........#\n###B#C#B#D###x\n  #A#D#C#A#\n  #########\n"},
		{"missing bottom", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n"},
		{"content after bottom", example + "  #A#B#C#D#\n"},
		{"uneven rooms", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C###\n  #########\n"},
		{"row too short", "#############\n#...........#\n###B#C#B#D###\n  #A#D\n  #########\n"},
		{"no rooms", "#############\n#...........#\n#############\n  #########\n"},
		{"wrong counts", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#B#\n  #########\n"},
		{"amphipod on a door", "#############\n#..A........#\n###B#.#C#D###\n  #########\n"},
		{"text above the hallway", "burrow\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
		{"blank top wall", "\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.diagram), burrow.Standard())
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseInvalidLayout(t *testing.T) {
	_, err := Parse(strings.NewReader(example), burrow.Layout{Hallway: 11})
	assert.ErrorIs(t, err, burrow.ErrLayout)
}

func TestRenderRoundTrip(t *testing.T) {
	l := burrow.Standard()
	b, err := burrow.New(l, 2)
	require.NoError(t, err)
	c, err := b.NewConfiguration(tokens(t, ".A...B....."), [][]burrow.Token{
		tokens(t, ".."), tokens(t, "CD"), tokens(t, "BC"), tokens(t, "DA"),
	})
	require.NoError(t, err)

	text := Render(b, c)
	assert.Equal(t, `#############
#.A...B.....#
###.#C#B#D###
  #.#D#C#A#
  #########
`, text)

	d, err := Parse(strings.NewReader(text), l)
	require.NoError(t, err)
	assert.Equal(t, c, d.Start)
}

func TestRenderExample(t *testing.T) {
	d, err := Parse(strings.NewReader(example), burrow.Standard())
	require.NoError(t, err)
	assert.Equal(t, example, Render(d.Burrow, d.Start))
}

func TestUnfold(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(example))
	require.NoError(t, err)
	got, err := Unfold(lines, burrow.Standard())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#############",
		"#...........#",
		"###B#C#B#D###",
		"  #D#C#B#A#",
		"  #D#B#A#C#",
		"  #A#D#C#A#",
		"  #########",
	}, got)

	d, err := ParseLines(got, burrow.Standard())
	require.NoError(t, err)
	assert.Equal(t, 4, d.Burrow.Depth())
}

func TestUnfoldErrors(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(example))
	require.NoError(t, err)

	two := burrow.Layout{Hallway: 5, Doors: []int{1, 3}, Costs: []int{1, 2}, Letters: "AB"}
	_, err = Unfold(lines, two)
	assert.ErrorIs(t, err, ErrUnfold)

	_, err = Unfold(lines[:2], burrow.Standard())
	assert.ErrorIs(t, err, ErrUnfold)

	_, err = Unfold([]string{"###", "...", "###", "###"}, burrow.Standard())
	assert.ErrorIs(t, err, ErrUnfold)
}

func TestParseCustomLayout(t *testing.T) {
	l := burrow.Layout{Hallway: 5, Doors: []int{1, 3}, Costs: []int{1, 5}, Letters: "XY"}
	d, err := Parse(strings.NewReader("#######\n#.....#\n##Y#X##\n #Y#X#\n #####\n"), l)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Burrow.Depth())
	assert.Equal(t, "#######\n#.....#\n##Y#X##\n #Y#X#\n #####\n", Render(d.Burrow, d.Start))
}
