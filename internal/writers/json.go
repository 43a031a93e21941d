package writers

import (
	"io"

	"seqgen/internal/jsonutil"
	"seqgen/internal/sequence"
	"seqgen/pkg/api"
)

func init() { Register(FormatJSON, WriteJSON) }

// ToAPI converts a sequence to the stable v1 wire type.
func ToAPI(seq *sequence.Sequence) api.SequenceV1 {
	out := api.SequenceV1{
		SequenceNumber: seq.Number(),
		Blank:          seq.Blank().String(),
		Standard:       seq.Standard().String(),
		Entries:        make([]api.EntryV1, 0, seq.Len()),
	}
	for _, e := range seq.Entries() {
		out.Entries = append(out.Entries, api.EntryV1{Label: e.Label, Slot: e.Slot.String(), Kind: e.Kind.String()})
	}
	return out
}

// WriteJSON writes the sequence as indented JSON.
func WriteJSON(w io.Writer, seq *sequence.Sequence) error {
	return jsonutil.EncodePretty(w, ToAPI(seq))
}
