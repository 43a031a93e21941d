package sequence

import (
	"github.com/pkg/errors"

	"seqgen/internal/trays"
)

// Config controls how control injections are interleaved with samples.
type Config struct {
	// Number is the run namespace embedded in control labels (SQ<Number>_...).
	Number int
	// Interval is the number of samples between consecutive control blocks.
	Interval int
	// Standard is the marker used in standard labels, e.g. "ISTD".
	Standard string
	// BeginningBlanks are emitted before the first control block.
	BeginningBlanks int
	// Pattern lists one control block's injections in order, e.g. "BSB".
	Pattern string
	// EndWithControl appends one more control block after the last sample.
	EndWithControl bool
}

// DefaultConfig mirrors the lab's standard run: one leading blank, BSB
// control blocks, ISTD standards, closing control block.
func DefaultConfig() Config {
	return Config{
		Standard:        StandardISTD,
		BeginningBlanks: 1,
		Pattern:         "BSB",
		EndWithControl:  true,
	}
}

// Validate reports configuration errors before any entry is produced.
func (c Config) Validate() error {
	if c.Interval < 1 {
		return errors.Wrapf(trays.ErrConfiguration, "control block interval %d must be ≥ 1", c.Interval)
	}
	if c.BeginningBlanks < 0 {
		return errors.Wrapf(trays.ErrConfiguration, "beginning blanks %d must be ≥ 0", c.BeginningBlanks)
	}
	if c.Number < 0 {
		return errors.Wrapf(trays.ErrConfiguration, "sequence number %d must be ≥ 0", c.Number)
	}
	if c.Standard == "" {
		return errors.Wrap(trays.ErrConfiguration, "standard marker is empty")
	}
	_, err := ParsePattern(c.Pattern)
	return err
}

// Entry is one injection: the name submitted to the instrument and the slot it draws from.
type Entry struct {
	Label string
	Slot  trays.Slot
	Kind  Kind
}

// Sequence is a built run. It is never modified after Build returns.
type Sequence struct {
	number          int
	blank, standard trays.Slot
	entries         []Entry
}

// Build interleaves control blocks with the map's shuffled placement:
// BeginningBlanks blanks, then {control block, up to Interval samples}
// until the samples run out, then an optional closing control block.
// A short final group is emitted as-is.
func Build(m *trays.Map, cfg Config) (*Sequence, error) {
	if m == nil {
		return nil, errors.Wrap(trays.ErrConfiguration, "nil slot map")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pattern, _ := ParsePattern(cfg.Pattern)

	placements := m.ShuffledPlacement()
	b := &builder{
		cfg:      cfg,
		blank:    m.Blank(),
		standard: m.Standard(),
		out:      make([]Entry, 0, estimate(cfg, len(placements), len(pattern))),
	}

	for i := 0; i < cfg.BeginningBlanks; i++ {
		b.control(Blank)
	}
	for i := 0; i < len(placements); i += cfg.Interval {
		b.block(pattern)
		end := i + cfg.Interval
		if end > len(placements) {
			end = len(placements)
		}
		for _, p := range placements[i:end] {
			b.out = append(b.out, Entry{Label: p.Sample, Slot: p.Slot, Kind: Sample})
		}
	}
	if cfg.EndWithControl {
		b.block(pattern)
	}
	return &Sequence{number: cfg.Number, blank: b.blank, standard: b.standard, entries: b.out}, nil
}

func estimate(cfg Config, samples, blockLen int) int {
	blocks := samples / cfg.Interval
	if samples%cfg.Interval != 0 {
		blocks++
	}
	if cfg.EndWithControl {
		blocks++
	}
	n := cfg.BeginningBlanks + samples + blocks*blockLen
	if n < 0 {
		return 0
	}
	return n
}

// builder holds the two independent label counters.
type builder struct {
	cfg             Config
	blank, standard trays.Slot
	nBlank, nStd    int
	out             []Entry
}

func (b *builder) block(pattern []Kind) {
	for _, k := range pattern {
		b.control(k)
	}
}

func (b *builder) control(k Kind) {
	var e Entry
	switch k {
	case Blank:
		e = Entry{Label: Label(b.cfg.Number, BlankLabel, b.nBlank), Slot: b.blank, Kind: Blank}
		b.nBlank++
	case Standard:
		e = Entry{Label: Label(b.cfg.Number, b.cfg.Standard, b.nStd), Slot: b.standard, Kind: Standard}
		b.nStd++
	default:
		panic("sequence: control kind " + k.String())
	}
	b.out = append(b.out, e)
}

// Number is the run namespace.
func (s *Sequence) Number() int { return s.number }

// Blank is the slot every blank injection draws from.
func (s *Sequence) Blank() trays.Slot { return s.blank }

// Standard is the slot every standard injection draws from.
func (s *Sequence) Standard() trays.Slot { return s.standard }

// Len is the number of injections.
func (s *Sequence) Len() int { return len(s.entries) }

// Entries returns a copy of the injections in run order.
func (s *Sequence) Entries() []Entry { return append([]Entry(nil), s.entries...) }

// Row is the (label, slot identifier) pair handed to exporters.
type Row struct {
	Label string
	Slot  string
}

// Rows renders the sequence for export.
func (s *Sequence) Rows() []Row {
	out := make([]Row, len(s.entries))
	for i, e := range s.entries {
		out[i] = Row{Label: e.Label, Slot: e.Slot.String()}
	}
	return out
}

// Counts tallies injections by kind.
type Counts struct {
	Samples, Blanks, Standards int
}

// Counts tallies the sequence.
func (s *Sequence) Counts() Counts {
	var c Counts
	for _, e := range s.entries {
		switch e.Kind {
		case Sample:
			c.Samples++
		case Blank:
			c.Blanks++
		case Standard:
			c.Standards++
		}
	}
	return c
}
