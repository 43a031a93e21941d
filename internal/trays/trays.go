package trays

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// DefaultStart is the first slot used for samples when none is given.
const DefaultStart = "GA1"

// SampleID formats a sample number as the instrument vial name.
func SampleID(n int) string { return fmt.Sprintf("S%05d", n) }

// Shuffler permutes n elements via swap. *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Placement pairs one sample with the slot holding it.
type Placement struct {
	Sample string
	Slot   Slot
}

// Option configures New.
type Option func(*options)

type options struct {
	layout   Layout
	start    string
	blank    string
	standard string
	rnd      Shuffler
}

// WithLayout overrides DefaultLayout.
func WithLayout(l Layout) Option { return func(o *options) { o.layout = l } }

// WithStart sets the slot receiving the first sample.
func WithStart(id string) Option { return func(o *options) { o.start = id } }

// WithBlank pins the blank vial to id instead of the slot after the samples.
func WithBlank(id string) Option { return func(o *options) { o.blank = id } }

// WithStandard pins the standard vial to id instead of the second slot after the samples.
func WithStandard(id string) Option { return func(o *options) { o.standard = id } }

// WithRand injects the randomness used by ShuffledPlacement.
func WithRand(r Shuffler) Option { return func(o *options) { o.rnd = r } }

// Map assigns numbered samples to a contiguous run of tray slots and
// reserves one slot each for the blank and the standard vial.
//
// A Map is immutable once built; the shuffled order is computed on first
// request and then reused. It is not safe for concurrent use.
type Map struct {
	layout   Layout
	slots    []Slot
	samples  []string
	start    int
	blank    Slot
	standard Slot
	rnd      Shuffler

	shuffled []Placement
}

// New builds the slot map for samples first..last inclusive.
func New(first, last int, opts ...Option) (*Map, error) {
	o := options{layout: DefaultLayout(), start: DefaultStart}
	for _, fn := range opts {
		fn(&o)
	}

	if first < 0 || last < first {
		return nil, errors.Wrapf(ErrInput, "range %d..%d holds no samples", first, last)
	}
	if err := o.layout.Validate(); err != nil {
		return nil, err
	}

	m := &Map{
		layout: o.layout,
		slots:  o.layout.Slots(),
		rnd:    o.rnd,
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	startSlot, err := o.layout.Parse(o.start)
	if err != nil {
		return nil, errors.Wrap(err, "starting slot")
	}
	m.start = o.layout.Index(startSlot)

	if last-first >= len(m.slots)-m.start {
		return nil, errors.Wrapf(ErrCapacity, "cannot fit samples %d..%d from %s in %d trays of %dx%d",
			first, last, startSlot, len(o.layout.Trays), len(o.layout.Rows), len(o.layout.Columns))
	}
	n := last - first + 1
	m.samples = make([]string, 0, n)
	for i := first; i <= last; i++ {
		m.samples = append(m.samples, SampleID(i))
	}

	if m.blank, err = m.reserved("blank", o.blank, m.start+n); err != nil {
		return nil, err
	}
	if m.standard, err = m.reserved("standard", o.standard, m.start+n+1); err != nil {
		return nil, err
	}
	return m, nil
}

// reserved resolves an explicit reserved slot, or falls back to the slot at
// index def, and rejects slots inside the sample range.
func (m *Map) reserved(what, id string, def int) (Slot, error) {
	var s Slot
	if id == "" {
		if def >= len(m.slots) {
			return Slot{}, errors.Wrapf(ErrCapacity, "no free slot left for the default %s location", what)
		}
		s = m.slots[def]
	} else {
		var err error
		if s, err = m.layout.Parse(id); err != nil {
			return Slot{}, errors.Wrapf(err, "%s location", what)
		}
	}
	if m.inSampleRange(s) {
		return Slot{}, errors.Wrapf(ErrOverlap, "%s location %s lies within sample slots %s-%s",
			what, s, m.slots[m.start], m.slots[m.start+len(m.samples)-1])
	}
	return s, nil
}

func (m *Map) inSampleRange(s Slot) bool {
	i := m.layout.Index(s)
	return i >= m.start && i < m.start+len(m.samples)
}

// Layout returns the deck layout.
func (m *Map) Layout() Layout { return m.layout }

// Slots returns a copy of the slot universe in order.
func (m *Map) Slots() []Slot { return append([]Slot(nil), m.slots...) }

// Samples returns a copy of the sample identifiers in numeric order.
func (m *Map) Samples() []string { return append([]string(nil), m.samples...) }

// Len is the number of samples.
func (m *Map) Len() int { return len(m.samples) }

// StartIndex is the position of the first sample slot in the slot universe.
func (m *Map) StartIndex() int { return m.start }

// Blank is the reserved blank vial slot.
func (m *Map) Blank() Slot { return m.blank }

// Standard is the reserved standard vial slot.
func (m *Map) Standard() Slot { return m.standard }

// Placement returns an iterator over samples in slot order.
func (m *Map) Placement() *PlacementIter { return &PlacementIter{m: m} }

// Placements materializes Placement.
func (m *Map) Placements() []Placement {
	out := make([]Placement, 0, len(m.samples))
	it := m.Placement()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p)
	}
	return out
}

// ShuffledPlacement is a uniformly random permutation of Placements.
// The permutation is drawn once per Map; later calls return the same order.
func (m *Map) ShuffledPlacement() []Placement {
	if m.shuffled == nil {
		p := m.Placements()
		m.rnd.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
		m.shuffled = p
	}
	return append([]Placement(nil), m.shuffled...)
}

// SlotOf looks up the slot assigned to a sample identifier.
func (m *Map) SlotOf(sample string) (Slot, bool) {
	for i, s := range m.samples {
		if s == sample {
			return m.slots[m.start+i], true
		}
	}
	return Slot{}, false
}

// PlacementIter walks a Map's placement in slot order.
type PlacementIter struct {
	m *Map
	i int
}

// Next returns the next placement, or false once every sample was visited.
func (it *PlacementIter) Next() (Placement, bool) {
	if it.i >= len(it.m.samples) {
		return Placement{}, false
	}
	p := Placement{Sample: it.m.samples[it.i], Slot: it.m.slots[it.m.start+it.i]}
	it.i++
	return p, true
}
