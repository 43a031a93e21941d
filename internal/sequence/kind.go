package sequence

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"seqgen/internal/trays"
)

// Kind classifies one injection.
type Kind int

const (
	Sample Kind = iota
	Blank
	Standard
)

func (k Kind) String() string {
	switch k {
	case Sample:
		return "sample"
	case Blank:
		return "blank"
	case Standard:
		return "standard"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Pattern characters.
const (
	BlankMarker    = 'B'
	StandardMarker = 'S'
)

// BlankLabel is the kind marker embedded in blank control labels.
const BlankLabel = "B"

// KindOf maps a control-block pattern character to its injection kind.
func KindOf(c rune) (Kind, error) {
	switch c {
	case BlankMarker:
		return Blank, nil
	case StandardMarker:
		return Standard, nil
	}
	return 0, errors.Wrapf(trays.ErrConfiguration, "control pattern character %q is neither %c nor %c",
		c, BlankMarker, StandardMarker)
}

// ParsePattern converts a control-block pattern such as "BSB" to kinds.
func ParsePattern(p string) ([]Kind, error) {
	out := make([]Kind, 0, len(p))
	for _, c := range p {
		k, err := KindOf(c)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Label renders a control injection name: SQ<number>_<marker>_<index>.
func Label(number int, marker string, index int) string {
	return fmt.Sprintf("SQ%d_%s_%d", number, marker, index)
}

// Standard markers understood by the instrument methods.
const (
	StandardISTD = "ISTD" // pHILIC
	StandardLQC  = "LQC"  // lipid
	StandardQC   = "QC"   // ZIC
)

// StandardForFormat maps a numbered run format (1 pHILIC, 2 lipid, 3 ZIC)
// or a marker name to the standard marker.
func StandardForFormat(f string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(f)) {
	case "1", StandardISTD, "PHILIC":
		return StandardISTD, nil
	case "2", StandardLQC, "LIPID":
		return StandardLQC, nil
	case "3", StandardQC, "ZIC":
		return StandardQC, nil
	}
	return "", errors.Wrapf(trays.ErrConfiguration, "unknown standard format %q (want 1 pHILIC, 2 lipid, or 3 ZIC)", f)
}
