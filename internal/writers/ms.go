package writers

import (
	"io"

	"github.com/pkg/errors"

	"seqgen/internal/sequence"
)

func init() { Register(FormatMS, WriteMS) }

// MS header block. The second header cell is a placeholder column that is
// dropped before writing, leaving a single "File Name" column.
const (
	MSBracketHeader   = "Bracket Type=4"
	MSPlaceholder     = "Steve"
	MSFileNameHeading = "File Name"
)

// Table is a header row plus data rows of equal width.
type Table struct {
	Header []string
	Rows   [][]string
}

// DropColumn removes the column whose header is name.
func (t *Table) DropColumn(name string) error {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.Errorf("column %q not found", name)
	}
	t.Header = append(t.Header[:idx:idx], t.Header[idx+1:]...)
	for i, r := range t.Rows {
		if idx < len(r) {
			t.Rows[i] = append(r[:idx:idx], r[idx+1:]...)
		}
	}
	return nil
}

// WriteCSV writes the header and rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := newCSVWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// MSTable builds the MS sequence table: the bracket header, the "File Name"
// row, then every injection, with the placeholder column removed.
func MSTable(seq *sequence.Sequence) (*Table, error) {
	t := &Table{
		Header: []string{MSBracketHeader, MSPlaceholder},
		Rows:   [][]string{{MSFileNameHeading, ""}},
	}
	for _, r := range seq.Rows() {
		t.Rows = append(t.Rows, []string{r.Label, r.Slot})
	}
	if err := t.DropColumn(MSPlaceholder); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteMS writes the MS sequence file.
func WriteMS(w io.Writer, seq *sequence.Sequence) error {
	t, err := MSTable(seq)
	if err != nil {
		return errors.Wrap(err, "build MS sequence")
	}
	return errors.Wrap(t.WriteCSV(w), "write MS sequence")
}
