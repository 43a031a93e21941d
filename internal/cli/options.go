// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"seqgen/internal/cliutil"
	"seqgen/internal/config"
	"seqgen/internal/sequence"
	"seqgen/internal/trays"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Default export file names.
const (
	DefaultLCFile = "SQtestLC.csv"
	DefaultMSFile = "SQtestMS.csv"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Samples
	SequenceNumber int
	Start          int
	End            int

	// Interleaving
	Interval        int
	BeginningBlanks int
	Pattern         string
	StandardFormat  string
	Standard        string // resolved marker, e.g. ISTD
	EndWithControl  bool

	// Deck
	Trays        string
	Rows         string
	Columns      []int
	StartSlot    string
	BlankSlot    string
	StandardSlot string
	Seed         int64

	// Output
	Dir      string
	LCFile   string
	MSFile   string
	Yes      bool
	DryRun   bool
	PrintMap bool
	JSON     bool

	ConfigFile string
	Quiet      bool
	Verbose    bool
	Version    bool
}

// Layout returns the deck layout described by the options.
func (o Options) Layout() trays.Layout {
	return trays.Layout{Trays: o.Trays, Rows: o.Rows, Columns: o.Columns}
}

// SequenceConfig returns the interleaving parameters.
func (o Options) SequenceConfig() sequence.Config {
	return sequence.Config{
		Number:          o.SequenceNumber,
		Interval:        o.Interval,
		Standard:        o.Standard,
		BeginningBlanks: o.BeginningBlanks,
		Pattern:         o.Pattern,
		EndWithControl:  o.EndWithControl,
	}
}

// LCPath and MSPath are the export destinations.
func (o Options) LCPath() string { return filepath.Join(o.Dir, o.LCFile) }
func (o Options) MSPath() string { return filepath.Join(o.Dir, o.MSFile) }

// NewFlagSet returns a FlagSet with ContinueOnError and the seqgen usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, overlays the optional config
// file beneath them, and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, examples, noEndControl bool
	var columns string
	def := sequence.DefaultConfig()
	layout := trays.DefaultLayout()

	// Samples
	fs.IntVar(&o.SequenceNumber, "sequence-number", -1, "sequence number used in control labels [required]")
	fs.IntVar(&o.SequenceNumber, "n", -1, "alias of --sequence-number")
	fs.IntVar(&o.Start, "start", 1, "first sample number [1]")
	fs.IntVar(&o.End, "end", -1, "last sample number [required]")

	// Interleaving
	fs.IntVar(&o.Interval, "interval", 0, "samples between control blocks [required]")
	fs.IntVar(&o.Interval, "i", 0, "alias of --interval")
	fs.IntVar(&o.BeginningBlanks, "beginning-blanks", def.BeginningBlanks, "blanks at the top of the run")
	fs.StringVar(&o.Pattern, "pattern", def.Pattern, "control block: B=blank, S=standard")
	fs.StringVar(&o.StandardFormat, "standard-format", "", "1|pHILIC (ISTD), 2|lipid (LQC), 3|ZIC (QC) [required]")
	fs.StringVar(&o.StandardFormat, "f", "", "alias of --standard-format")
	fs.BoolVar(&noEndControl, "no-end-control", false, "do not close the run with a control block")

	// Deck
	fs.StringVar(&o.Trays, "trays", layout.Trays, "tray letters in run order")
	fs.StringVar(&o.Rows, "rows", layout.Rows, "row letters per tray")
	fs.StringVar(&columns, "columns", "1-8", "column numbers per row (range or list)")
	fs.StringVar(&o.StartSlot, "start-slot", trays.DefaultStart, "slot of the first sample")
	fs.StringVar(&o.BlankSlot, "blank-slot", "", "blank vial slot (default: after the samples)")
	fs.StringVar(&o.StandardSlot, "standard-slot", "", "standard vial slot (default: after the blank)")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed for the sample order (0 = time-based)")

	// Output
	fs.StringVar(&o.Dir, "dir", "", "output directory (default: SQ<sequence-number>)")
	fs.StringVar(&o.Dir, "d", "", "alias of --dir")
	fs.StringVar(&o.LCFile, "lc-file", DefaultLCFile, "LC sequence file name")
	fs.StringVar(&o.MSFile, "ms-file", DefaultMSFile, "MS sequence file name")
	fs.BoolVar(&o.Yes, "yes", false, "reuse an existing output directory without asking")
	fs.BoolVar(&o.Yes, "y", false, "alias of --yes")
	fs.BoolVar(&o.DryRun, "dry-run", false, "build the sequence but write no files")
	fs.BoolVar(&o.PrintMap, "print-map", false, "print the tray map to stdout")
	fs.BoolVar(&o.JSON, "json", false, "print the sequence as JSON to stdout")

	// Misc
	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with run defaults")
	fs.BoolVar(&o.Quiet, "quiet", false, "only log warnings and errors")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "log debug detail")
	fs.BoolVar(&o.Version, "v", false, "print version and exit")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help")
	fs.BoolVar(&examples, "examples", false, "show quickstart examples and exit")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if examples {
		return o, ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}
	o.EndWithControl = !noEndControl

	set := cliutil.SetFlags(fs)
	explicit := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
	if o.ConfigFile != "" {
		f, err := config.Load(o.ConfigFile)
		if err != nil {
			return o, err
		}
		overlay(&o, &columns, f, explicit)
	}

	switch len(posArgs) {
	case 0:
	case 1:
		if explicit("dir", "d") {
			return o, errors.New("output directory given both as --dir and as an argument")
		}
		o.Dir = posArgs[0]
	default:
		return o, errors.Errorf("expected at most one output directory, got %d arguments", len(posArgs))
	}

	cols, err := cliutil.ParseColumns(columns)
	if err != nil {
		return o, errors.Wrap(err, "--columns")
	}
	o.Columns = cols
	return o, validate(&o)
}

// overlay copies config file values into o for every option not set on the command line.
func overlay(o *Options, columns *string, f *config.File, explicit func(...string) bool) {
	setInt := func(dst *int, src *int, names ...string) {
		if src != nil && !explicit(names...) {
			*dst = *src
		}
	}
	setStr := func(dst *string, src *string, names ...string) {
		if src != nil && !explicit(names...) {
			*dst = *src
		}
	}
	setInt(&o.SequenceNumber, f.SequenceNumber, "sequence-number", "n")
	setInt(&o.Start, f.Start, "start")
	setInt(&o.End, f.End, "end")
	setInt(&o.Interval, f.Interval, "interval", "i")
	setInt(&o.BeginningBlanks, f.BeginningBlanks, "beginning-blanks")
	setStr(&o.Pattern, f.Pattern, "pattern")
	setStr(&o.StandardFormat, f.StandardFormat, "standard-format", "f")
	if f.EndWithControl != nil && !explicit("no-end-control") {
		o.EndWithControl = *f.EndWithControl
	}
	if f.Seed != nil && !explicit("seed") {
		o.Seed = *f.Seed
	}

	setStr(&o.Trays, f.Layout.Trays, "trays")
	setStr(&o.Rows, f.Layout.Rows, "rows")
	setStr(columns, f.Layout.Columns, "columns")
	setStr(&o.StartSlot, f.Layout.StartSlot, "start-slot")
	setStr(&o.BlankSlot, f.Layout.BlankSlot, "blank-slot")
	setStr(&o.StandardSlot, f.Layout.StandardSlot, "standard-slot")

	setStr(&o.Dir, f.Output.Dir, "dir", "d")
	setStr(&o.LCFile, f.Output.LCFile, "lc-file")
	setStr(&o.MSFile, f.Output.MSFile, "ms-file")
}

func validate(o *Options) error {
	if o.SequenceNumber < 0 {
		return errors.New("--sequence-number is required and must be ≥ 0")
	}
	if o.End < 0 {
		return errors.New("--end is required and must be ≥ 0")
	}
	if o.Interval == 0 {
		return errors.New("--interval is required")
	}
	if o.StandardFormat == "" {
		return errors.New("--standard-format is required (1 pHILIC, 2 lipid, 3 ZIC)")
	}
	std, err := sequence.StandardForFormat(o.StandardFormat)
	if err != nil {
		return err
	}
	o.Standard = std
	if o.LCFile == "" || o.MSFile == "" {
		return errors.New("--lc-file and --ms-file must not be empty")
	}
	if filepath.Clean(o.LCFile) == filepath.Clean(o.MSFile) {
		return errors.Errorf("--lc-file and --ms-file are both %q", o.LCFile)
	}
	if o.Dir == "" {
		o.Dir = fmt.Sprintf("SQ%d", o.SequenceNumber)
	}
	return nil
}
