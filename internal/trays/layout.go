package trays

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Layout describes the physical autosampler deck. Trays and rows are single
// ASCII letters; columns are the numbers printed on the tray.
type Layout struct {
	Trays   string
	Rows    string
	Columns []int
}

// DefaultLayout is three trays (R, G, B) of 5 rows by 8 columns.
func DefaultLayout() Layout {
	return Layout{Trays: "RGB", Rows: "ABCDE", Columns: ColumnRange(1, 8)}
}

// ColumnRange returns the inclusive column numbers lo..hi.
func ColumnRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return out
}

// Size is the number of addressable slots.
func (l Layout) Size() int { return len(l.Trays) * len(l.Rows) * len(l.Columns) }

// Validate checks that every dimension is non-empty and free of duplicates.
func (l Layout) Validate() error {
	if err := checkLetters("tray", l.Trays); err != nil {
		return err
	}
	if err := checkLetters("row", l.Rows); err != nil {
		return err
	}
	if len(l.Columns) == 0 {
		return errors.Wrap(ErrConfiguration, "layout has no columns")
	}
	seen := make(map[int]bool, len(l.Columns))
	for _, c := range l.Columns {
		if c < 0 {
			return errors.Wrapf(ErrConfiguration, "negative column %d", c)
		}
		if seen[c] {
			return errors.Wrapf(ErrConfiguration, "duplicate column %d", c)
		}
		seen[c] = true
	}
	return nil
}

func checkLetters(what, s string) error {
	if s == "" {
		return errors.Wrapf(ErrConfiguration, "layout has no %ss", what)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) {
			return errors.Wrapf(ErrConfiguration, "%s id %q is not a letter", what, c)
		}
		if seen[c] {
			return errors.Wrapf(ErrConfiguration, "duplicate %s %q", what, c)
		}
		seen[c] = true
	}
	return nil
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

// Slots enumerates the slot universe: tray outermost, then row, then column.
func (l Layout) Slots() []Slot {
	out := make([]Slot, 0, l.Size())
	for i := 0; i < len(l.Trays); i++ {
		for j := 0; j < len(l.Rows); j++ {
			for _, c := range l.Columns {
				out = append(out, Slot{Tray: l.Trays[i], Row: l.Rows[j], Column: c})
			}
		}
	}
	return out
}

// Index returns the position of s in the slot universe, or -1.
func (l Layout) Index(s Slot) int {
	ti, ri, ci := indexByte(l.Trays, s.Tray), indexByte(l.Rows, s.Row), -1
	for i, c := range l.Columns {
		if c == s.Column {
			ci = i
			break
		}
	}
	if ti < 0 || ri < 0 || ci < 0 {
		return -1
	}
	return (ti*len(l.Rows)+ri)*len(l.Columns) + ci
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Parse resolves a slot identifier such as "RA7" against the layout.
func (l Layout) Parse(id string) (Slot, error) {
	if len(id) < 3 {
		return Slot{}, errors.Wrapf(ErrConfiguration, "malformed slot %q", id)
	}
	col, err := strconv.Atoi(id[2:])
	if err != nil || strconv.Itoa(col) != id[2:] {
		return Slot{}, errors.Wrapf(ErrConfiguration, "malformed slot %q", id)
	}
	s := Slot{Tray: id[0], Row: id[1], Column: col}
	if l.Index(s) < 0 {
		return Slot{}, errors.Wrapf(ErrConfiguration, "slot %q not found in layout", id)
	}
	return s, nil
}

// Slot is one addressable tray position.
type Slot struct {
	Tray   byte
	Row    byte
	Column int
}

// String renders the instrument identifier, e.g. "RA7".
func (s Slot) String() string { return fmt.Sprintf("%c%c%d", s.Tray, s.Row, s.Column) }

// IsZero reports whether s is unset.
func (s Slot) IsZero() bool { return s == Slot{} }
