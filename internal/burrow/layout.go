package burrow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrLayout is wrapped by every layout validation error.
var ErrLayout = errors.New("invalid layout")

// A Layout describes the geometry of a burrow: the hallway length, the hallway
// cell above each room, and the step cost and display letter of each amphipod
// type. Type i lives in room i.
type Layout struct {
	Hallway int    `yaml:"hallway" validate:"required,gte=3"`
	Doors   []int  `yaml:"doors" validate:"required,min=1,dive,gte=0"`
	Costs   []int  `yaml:"costs" validate:"required,min=1,dive,gt=0"`
	Letters string `yaml:"letters" validate:"required,alpha"`
}

var layoutValidate = validator.New()

// Standard returns the layout of the reference puzzle.
func Standard() Layout {
	return Layout{
		Hallway: 11,
		Doors:   []int{2, 4, 6, 8},
		Costs:   []int{1, 10, 100, 1000},
		Letters: "ABCD",
	}
}

// ParseLayout decodes and validates a YAML layout. Missing keys fall back to the
// standard layout.
func ParseLayout(data []byte) (Layout, error) {
	l := Standard()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %s", ErrLayout, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the struct tags and the constraints between fields.
func (l Layout) Validate() error {
	if err := layoutValidate.Struct(l); err != nil {
		return fmt.Errorf("%w: %s", ErrLayout, err)
	}
	n := len(l.Doors)
	if len(l.Costs) != n || len(l.Letters) != n {
		return fmt.Errorf("%w: %d doors, %d costs and %d letters", ErrLayout, n, len(l.Costs), len(l.Letters))
	}
	// Token values are stored in a byte, with 0 meaning empty.
	if n > 255 {
		return fmt.Errorf("%w: too many rooms (%d)", ErrLayout, n)
	}
	seen := make(map[int]bool)
	for _, d := range l.Doors {
		if d >= l.Hallway {
			return fmt.Errorf("%w: door %d outside hallway of length %d", ErrLayout, d, l.Hallway)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate door %d", ErrLayout, d)
		}
		seen[d] = true
	}
	if len(seen) == l.Hallway {
		return fmt.Errorf("%w: no hallway cell to stop on", ErrLayout)
	}
	for i := 0; i < n; i++ {
		if strings.IndexByte(l.Letters[i+1:], l.Letters[i]) >= 0 {
			return fmt.Errorf("%w: duplicate letter %q", ErrLayout, l.Letters[i])
		}
	}
	return nil
}

// Token returns the token displayed as letter.
func (l Layout) Token(letter byte) (Token, bool) {
	i := strings.IndexByte(l.Letters, letter)
	if i < 0 {
		return Empty, false
	}
	return HomeOf(i), true
}

// Letter returns the display character of t; empty cells are '.'.
func (l Layout) Letter(t Token) byte {
	if t == Empty {
		return '.'
	}
	return l.Letters[t.room()]
}
