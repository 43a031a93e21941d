// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"seqgen/internal/sequence"
)

// Format names.
const (
	FormatLC   = "lc"
	FormatMS   = "ms"
	FormatJSON = "json"
)

// SequenceWriter serializes a whole sequence to w.
type SequenceWriter func(w io.Writer, seq *sequence.Sequence) error

// SequenceWriters maps format → handler. Formats register themselves in init().
var SequenceWriters = map[string]SequenceWriter{}

// Register installs fn for format (last wins).
func Register(format string, fn SequenceWriter) { SequenceWriters[format] = fn }

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(SequenceWriters))
	for f := range SequenceWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, seq *sequence.Sequence) error {
	fn, ok := SequenceWriters[format]
	if !ok {
		return errors.Errorf("unknown sequence format %q (no writer registered)", format)
	}
	return fn(w, seq)
}
