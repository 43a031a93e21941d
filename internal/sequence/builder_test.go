package sequence_test

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqgen/internal/sequence"
	"seqgen/internal/trays"
)

type reverser struct{}

func (reverser) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func slot(t *testing.T, id string) trays.Slot {
	t.Helper()
	s, err := trays.DefaultLayout().Parse(id)
	require.NoError(t, err)
	return s
}

func newMap(t *testing.T, first, last int, r trays.Shuffler) *trays.Map {
	t.Helper()
	m, err := trays.New(first, last, trays.WithRand(r))
	require.NoError(t, err)
	return m
}

func TestBuild_WorkedExample(t *testing.T) {
	m := newMap(t, 1, 7, reverser{})
	cfg := sequence.Config{
		Number: 5, Interval: 3, Standard: "ISTD",
		BeginningBlanks: 1, Pattern: "BSB", EndWithControl: true,
	}
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	blank := func(i int) sequence.Entry {
		return sequence.Entry{Label: sequence.Label(5, "B", i), Slot: slot(t, "GA8"), Kind: sequence.Blank}
	}
	std := func(i int) sequence.Entry {
		return sequence.Entry{Label: sequence.Label(5, "ISTD", i), Slot: slot(t, "GB1"), Kind: sequence.Standard}
	}
	sample := func(n int) sequence.Entry {
		return sequence.Entry{Label: trays.SampleID(n), Slot: trays.Slot{Tray: 'G', Row: 'A', Column: n}, Kind: sequence.Sample}
	}

	want := []sequence.Entry{
		blank(0),
		blank(1), std(0), blank(2), sample(7), sample(6), sample(5),
		blank(3), std(1), blank(4), sample(4), sample(3), sample(2),
		blank(5), std(2), blank(6), sample(1),
		blank(7), std(3), blank(8),
	}
	if diff := cmp.Diff(want, seq.Entries()); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "SQ5_B_0", seq.Entries()[0].Label)
	assert.Equal(t, "SQ5_ISTD_0", seq.Entries()[2].Label)
	assert.Equal(t, sequence.Counts{Samples: 7, Blanks: 9, Standards: 4}, seq.Counts())
}

func TestBuild_BeginningBlanksIncreaseFromZero(t *testing.T) {
	m := newMap(t, 1, 4, reverser{})
	cfg := sequence.DefaultConfig()
	cfg.Interval = 2
	cfg.BeginningBlanks = 3
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	es := seq.Entries()
	for i := 0; i < 3; i++ {
		assert.Equal(t, sequence.Blank, es[i].Kind)
		assert.Equal(t, sequence.Label(0, "B", i), es[i].Label)
		assert.Equal(t, m.Blank(), es[i].Slot)
	}
	assert.Equal(t, "SQ0_B_3", es[3].Label, "block blanks continue the leading blank counter")
}

func TestBuild_ControlBlocksFollowPattern(t *testing.T) {
	const pattern = "SBBSS"
	kinds, err := sequence.ParsePattern(pattern)
	require.NoError(t, err)

	m := newMap(t, 1, 11, rand.New(rand.NewSource(3)))
	cfg := sequence.Config{Number: 2, Interval: 4, Standard: "QC", Pattern: pattern}
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	es := seq.Entries()
	var blocks [][]sequence.Entry
	for i := 0; i < len(es); {
		if es[i].Kind == sequence.Sample {
			i++
			continue
		}
		j := i
		for j < len(es) && es[j].Kind != sequence.Sample {
			j++
		}
		blocks = append(blocks, es[i:j])
		i = j
	}
	require.Len(t, blocks, 3, "ceil(11/4) blocks, no trailing block")
	for _, blk := range blocks {
		require.Len(t, blk, len(kinds))
		for i, e := range blk {
			assert.Equal(t, kinds[i], e.Kind)
		}
	}
	assert.Equal(t, sequence.Sample, es[len(es)-1].Kind)
}

func TestBuild_LabelsNeverRepeat(t *testing.T) {
	m := newMap(t, 1, 25, rand.New(rand.NewSource(11)))
	cfg := sequence.DefaultConfig()
	cfg.Interval = 4
	cfg.BeginningBlanks = 2
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	seen := map[string]bool{}
	lastB, lastS := -1, -1
	for _, e := range seq.Entries() {
		require.False(t, seen[e.Label], "label %s repeated", e.Label)
		seen[e.Label] = true
		switch e.Kind {
		case sequence.Blank:
			assert.True(t, strings.HasPrefix(e.Label, "SQ0_B_"))
			assert.Equal(t, sequence.Label(0, "B", lastB+1), e.Label)
			lastB++
		case sequence.Standard:
			assert.Equal(t, sequence.Label(0, "ISTD", lastS+1), e.Label)
			assert.Equal(t, m.Standard(), e.Slot)
			lastS++
		}
	}
}

func TestBuild_EverySampleExactlyOnce(t *testing.T) {
	for interval := 1; interval <= 12; interval++ {
		m := newMap(t, 100, 110, rand.New(rand.NewSource(int64(interval))))
		cfg := sequence.DefaultConfig()
		cfg.Interval = interval
		seq, err := sequence.Build(m, cfg)
		require.NoError(t, err)

		var got []string
		for _, e := range seq.Entries() {
			if e.Kind == sequence.Sample {
				got = append(got, e.Label)
				want, ok := m.SlotOf(e.Label)
				require.True(t, ok)
				assert.Equal(t, want, e.Slot)
			}
		}
		sort.Strings(got)
		assert.Equal(t, m.Samples(), got, "interval %d", interval)
	}
}

func TestBuild_EndWithControl(t *testing.T) {
	m := newMap(t, 1, 6, reverser{})
	cfg := sequence.Config{Number: 1, Interval: 3, Standard: "LQC", Pattern: "BS", EndWithControl: true}
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	es := seq.Entries()
	require.Equal(t, 2+3+2+3+2, len(es))
	tail := es[len(es)-2:]
	assert.Equal(t, sequence.Blank, tail[0].Kind)
	assert.Equal(t, sequence.Standard, tail[1].Kind)
	assert.Equal(t, sequence.Sample, es[len(es)-3].Kind)
	assert.Equal(t, "SQ1_LQC_2", tail[1].Label)
}

func TestBuild_IntervalLargerThanSamples(t *testing.T) {
	m := newMap(t, 1, 2, reverser{})
	cfg := sequence.DefaultConfig()
	cfg.Interval = 10
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)
	// blank, BSB, 2 samples, BSB
	assert.Equal(t, 1+3+2+3, seq.Len())
}

func TestBuild_HugeInterval(t *testing.T) {
	m := newMap(t, 1, 2, reverser{})
	seq, err := sequence.Build(m, sequence.Config{Interval: math.MaxInt, Standard: "ISTD", Pattern: "BSB"})
	require.NoError(t, err)
	assert.Equal(t, sequence.Counts{Samples: 2, Blanks: 2, Standards: 1}, seq.Counts())
	assert.Equal(t, sequence.Blank, seq.Entries()[0].Kind)
}

func TestBuild_EmptyPatternOnlySamples(t *testing.T) {
	m := newMap(t, 1, 3, reverser{})
	seq, err := sequence.Build(m, sequence.Config{Interval: 1, Standard: "QC"})
	require.NoError(t, err)
	assert.Equal(t, sequence.Counts{Samples: 3}, seq.Counts())
}

func TestBuild_Errors(t *testing.T) {
	m := newMap(t, 1, 3, reverser{})
	base := sequence.DefaultConfig()
	base.Interval = 2

	cases := map[string]func(*sequence.Config){
		"zero interval":     func(c *sequence.Config) { c.Interval = 0 },
		"negative interval": func(c *sequence.Config) { c.Interval = -4 },
		"negative blanks":   func(c *sequence.Config) { c.BeginningBlanks = -1 },
		"negative number":   func(c *sequence.Config) { c.Number = -1 },
		"empty standard":    func(c *sequence.Config) { c.Standard = "" },
		"bad pattern":       func(c *sequence.Config) { c.Pattern = "BXB" },
		"lowercase pattern": func(c *sequence.Config) { c.Pattern = "bsb" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			seq, err := sequence.Build(m, cfg)
			assert.Nil(t, seq)
			assert.True(t, errors.Is(err, trays.ErrConfiguration), "got %v", err)
		})
	}

	_, err := sequence.Build(nil, base)
	assert.True(t, errors.Is(err, trays.ErrConfiguration))
}

func TestSequence_RowsAndImmutability(t *testing.T) {
	m := newMap(t, 1, 2, reverser{})
	cfg := sequence.DefaultConfig()
	cfg.Number = 9
	cfg.Interval = 2
	seq, err := sequence.Build(m, cfg)
	require.NoError(t, err)

	rows := seq.Rows()
	assert.Equal(t, sequence.Row{Label: "SQ9_B_0", Slot: "GA3"}, rows[0])
	assert.Equal(t, sequence.Row{Label: "SQ9_ISTD_0", Slot: "GA4"}, rows[2])
	assert.Equal(t, sequence.Row{Label: "S00002", Slot: "GA2"}, rows[4])
	assert.Equal(t, 9, seq.Number())

	es := seq.Entries()
	es[0].Label = "mutated"
	assert.Equal(t, "SQ9_B_0", seq.Entries()[0].Label)
}
