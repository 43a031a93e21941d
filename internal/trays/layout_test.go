package trays

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutIndexMatchesEnumeration(t *testing.T) {
	l := Layout{Trays: "XY", Rows: "ABC", Columns: []int{2, 4, 6, 8}}
	for i, s := range l.Slots() {
		assert.Equal(t, i, l.Index(s), "slot %s", s)
	}
	assert.Equal(t, -1, l.Index(Slot{Tray: 'X', Row: 'A', Column: 3}))
	assert.Equal(t, 24, l.Size())
}

func TestLayoutParse(t *testing.T) {
	l := DefaultLayout()
	s, err := l.Parse("BE8")
	require.NoError(t, err)
	assert.Equal(t, Slot{Tray: 'B', Row: 'E', Column: 8}, s)

	for _, bad := range []string{"", "BE", "BEx", "QE1", "BF1", "BE0", "BE08", "BE+8", "BE 8"} {
		_, err := l.Parse(bad)
		assert.True(t, errors.Is(err, ErrConfiguration), "Parse(%q) = %v", bad, err)
	}
}

func TestLayoutParse_MultiDigitColumns(t *testing.T) {
	l := Layout{Trays: "P", Rows: "A", Columns: ColumnRange(1, 12)}
	s, err := l.Parse("PA12")
	require.NoError(t, err)
	assert.Equal(t, "PA12", s.String())
}

func TestLayoutValidate(t *testing.T) {
	cases := map[string]Layout{
		"no trays":        {Rows: "A", Columns: []int{1}},
		"no rows":         {Trays: "R", Columns: []int{1}},
		"no columns":      {Trays: "R", Rows: "A"},
		"duplicate tray":  {Trays: "RR", Rows: "A", Columns: []int{1}},
		"duplicate row":   {Trays: "R", Rows: "AA", Columns: []int{1}},
		"duplicate col":   {Trays: "R", Rows: "A", Columns: []int{1, 1}},
		"digit tray":      {Trays: "1", Rows: "A", Columns: []int{1}},
		"negative column": {Trays: "R", Rows: "A", Columns: []int{-1}},
	}
	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(l.Validate(), ErrConfiguration))
		})
	}
	assert.NoError(t, DefaultLayout().Validate())
}

func TestColumnRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ColumnRange(1, 3))
	assert.Nil(t, ColumnRange(3, 1))
}

func TestSlotZero(t *testing.T) {
	assert.True(t, Slot{}.IsZero())
	assert.False(t, Slot{Tray: 'R', Row: 'A', Column: 1}.IsZero())
}
