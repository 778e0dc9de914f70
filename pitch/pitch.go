package pitch

import (
	"golang.org/x/exp/slices"
)

// Table is the sorted set of pitches a piece uses. Notes refer to pitches
// by their position in it so each reference fits in a byte.
type Table struct {
	pitches []uint8
}

func NewTable(pitches []uint8) Table {
	sorted := append([]uint8(nil), pitches...)
	slices.Sort(sorted)
	return Table{pitches: slices.Compact(sorted)}
}

func (t Table) Index(p uint8) (int, bool) {
	i := slices.Index(t.pitches, p)
	return i, i >= 0
}

func (t Table) Len() int {
	return len(t.pitches)
}

func (t Table) Pitches() []uint8 {
	return append([]uint8(nil), t.pitches...)
}
