package writers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seqgen/internal/trays"
)

// Tray map cell markers for the reserved vials.
const (
	MapBlank    = "BLANK"
	MapStandard = "STD"
)

// WriteTrayMap prints where every vial goes: one grid per tray, one line per
// row, one cell per column. Empty slots are left blank.
func WriteTrayMap(w io.Writer, m *trays.Map) error {
	lookup := map[trays.Slot]string{}
	width := len(MapBlank)
	for _, p := range m.Placements() {
		lookup[p.Slot] = p.Sample
		if len(p.Sample) > width {
			width = len(p.Sample)
		}
	}
	lookup[m.Blank()] = MapBlank
	if m.Standard() == m.Blank() {
		lookup[m.Blank()] = MapBlank + "+" + MapStandard
		width = len(lookup[m.Blank()])
	} else {
		lookup[m.Standard()] = MapStandard
	}

	l := m.Layout()
	cell := func(s string) string {
		if len(s) >= width {
			return s
		}
		return s + strings.Repeat(" ", width-len(s))
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < len(l.Trays); i++ {
		t := l.Trays[i]
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "Tray %c\n", t)

		cols := make([]string, len(l.Columns))
		for k, c := range l.Columns {
			cols[k] = cell(strconv.Itoa(c))
		}
		fmt.Fprintf(bw, "   %s\n", strings.TrimRight(strings.Join(cols, "|"), " |"))

		for j := 0; j < len(l.Rows); j++ {
			r := l.Rows[j]
			cells := make([]string, len(l.Columns))
			for k, c := range l.Columns {
				cells[k] = cell(lookup[trays.Slot{Tray: t, Row: r, Column: c}])
			}
			line := fmt.Sprintf("%c: %s", r, strings.Join(cells, "|"))
			fmt.Fprintln(bw, strings.TrimRight(line, " |"))
		}
	}
	return bw.Flush()
}
