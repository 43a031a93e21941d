// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"seqgen/internal/version"
)

// Usage installs the seqgen help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – randomized LC-MS run sequence generator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] -n 12 --end 40 -i 5 -f 1 [output-dir]\n", name)

		fmt.Fprintln(out, "\nSamples:")
		fmt.Fprintln(out, "  -n, --sequence-number int   Sequence number used in control labels [*]")
		fmt.Fprintf(out, "      --start int             First sample number [%s]\n", def("start"))
		fmt.Fprintln(out, "      --end int               Last sample number [*]")

		fmt.Fprintln(out, "\nControls:")
		fmt.Fprintln(out, "  -i, --interval int          Samples between control blocks [*]")
		fmt.Fprintln(out, "  -f, --standard-format str   1|pHILIC (ISTD), 2|lipid (LQC), 3|ZIC (QC) [*]")
		fmt.Fprintf(out, "      --beginning-blanks int  Blanks at the top of the run [%s]\n", def("beginning-blanks"))
		fmt.Fprintf(out, "      --pattern string        Control block, B=blank S=standard [%s]\n", def("pattern"))
		fmt.Fprintln(out, "      --no-end-control        Do not close the run with a control block")

		fmt.Fprintln(out, "\nDeck:")
		fmt.Fprintf(out, "      --trays string          Tray letters [%s]\n", def("trays"))
		fmt.Fprintf(out, "      --rows string           Row letters [%s]\n", def("rows"))
		fmt.Fprintf(out, "      --columns string        Columns, range or list [%s]\n", def("columns"))
		fmt.Fprintf(out, "      --start-slot string     Slot of the first sample [%s]\n", def("start-slot"))
		fmt.Fprintln(out, "      --blank-slot string     Blank vial slot [after the samples]")
		fmt.Fprintln(out, "      --standard-slot string  Standard vial slot [after the blank]")
		fmt.Fprintf(out, "      --seed int              Random seed, 0=time-based [%s]\n", def("seed"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -d, --dir string            Output directory [SQ<sequence-number>]")
		fmt.Fprintf(out, "      --lc-file string        LC sequence file [%s]\n", def("lc-file"))
		fmt.Fprintf(out, "      --ms-file string        MS sequence file [%s]\n", def("ms-file"))
		fmt.Fprintln(out, "  -y, --yes                   Reuse an existing directory without asking")
		fmt.Fprintln(out, "      --dry-run               Build the sequence, write no files")
		fmt.Fprintln(out, "      --print-map             Print the tray map")
		fmt.Fprintln(out, "      --json                  Print the sequence as JSON")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           YAML file with run defaults")
		fmt.Fprintln(out, "  -q, --quiet                 Only log warnings and errors")
		fmt.Fprintln(out, "      --verbose               Log debug detail")
		fmt.Fprintln(out, "      --examples              Show quickstart examples")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// PrintExamples prints a small quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, "40 samples, a BSB control block every 5 samples, pHILIC standards:")
	_, _ = fmt.Fprintf(out, "  %s -n 12 --end 40 -i 5 -f 1\n", name)
	_, _ = fmt.Fprintln(out, "\nPreview the tray map and order without writing files:")
	_, _ = fmt.Fprintf(out, "  %s -n 12 --end 40 -i 5 -f lipid --print-map --dry-run --json\n", name)
	_, _ = fmt.Fprintln(out, "\nRun defaults from a file, reproducible order:")
	_, _ = fmt.Fprintf(out, "  %s --config run.yaml --seed 42 runs/SQ12\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
