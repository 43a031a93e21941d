package writers

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"seqgen/internal/sequence"
)

func init() { Register(FormatLC, WriteLC) }

// lcRow is one line of the LC sequence file.
type lcRow struct {
	Label string `csv:"label"`
	Slot  string `csv:"slot"`
}

func newCSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw
}

// WriteLC writes "label,slot" rows in run order with no header.
func WriteLC(w io.Writer, seq *sequence.Sequence) error {
	src := seq.Rows()
	rows := make([]*lcRow, len(src))
	for i, r := range src {
		rows[i] = &lcRow{Label: r.Label, Slot: r.Slot}
	}
	sw := gocsv.NewSafeCSVWriter(newCSVWriter(w))
	if err := gocsv.MarshalCSVWithoutHeaders(&rows, sw); err != nil {
		return errors.Wrap(err, "write LC sequence")
	}
	sw.Flush()
	return errors.Wrap(sw.Error(), "write LC sequence")
}
