package encoder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jsphweid/beeptable/constants"
	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/pitch"
	"github.com/jsphweid/beeptable/tuning"
	"github.com/jsphweid/beeptable/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxNotes is how many note entries fit into budget bytes next to a
// frequency table of tableSize entries.
func MaxNotes(budget, tableSize int) int {
	free := budget - constants.FrequencySize*tableSize
	if free < 0 {
		return 0
	}
	return free / constants.NoteSize
}

// Encode packs finalized notes into the device layout. The notes array keeps
// min(max, n) entries while len_notes declares min(max, n-1), so the player
// never reaches the last stored entry. Firmware built against existing
// headers relies on that bound.
func Encode(notes []model.FinalizedNote, table pitch.Table, budget int) model.Header {
	limit := MaxNotes(budget, table.Len())
	if len(notes) > limit {
		logrus.WithFields(logrus.Fields{
			"notes":  len(notes),
			"kept":   limit,
			"budget": budget,
		}).Warn("notes do not fit into the memory budget, truncating")
	}

	var h model.Header
	h.LenNotes = util.Max(util.Min(limit, len(notes)-1), 0)

	for _, p := range table.Pitches() {
		h.Frequencies = append(h.Frequencies, tuning.Frequency(p))
	}

	kept := notes[:util.Min(limit, len(notes))]
	h.Notes = make([]model.EncodedEntry, 0, len(kept))
	for i, n := range kept {
		e := model.EncodedEntry{
			Duration:       int(n.Duration),
			End:            int(n.Gap),
			PrimaryIndex:   n.PrimaryIndex,
			SecondaryIndex: n.SecondaryIndex,
		}
		if !fitsField(e.Duration) || !fitsField(e.End) {
			logrus.WithFields(logrus.Fields{
				"note":     i,
				"duration": e.Duration,
				"end":      e.End,
			}).Warn("time field does not fit into uint16 on the device")
		}
		h.Notes = append(h.Notes, e)
	}
	return h
}

func fitsField(v int) bool {
	return v >= 0 && v <= constants.MaxFieldValue
}

// Write emits the header in the layout the Arduino sketch includes:
// len_notes, then frequency_table, then notes.
func Write(w io.Writer, h model.Header) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "const int len_notes = %d;\n", h.LenNotes)

	writeArray(bw, "const uint16_t", "frequency_table", len(h.Frequencies), func(i int) string {
		return fmt.Sprintf("\t%d", h.Frequencies[i])
	})
	writeArray(bw, "Note", "notes", len(h.Notes), func(i int) string {
		n := h.Notes[i]
		return fmt.Sprintf("\t{%d,%d,%d,%d}", n.Duration, n.End, n.PrimaryIndex, n.SecondaryIndex)
	})

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "could not write header")
	}
	return nil
}

func writeArray(w *bufio.Writer, typ string, name string, length int, format func(i int) string) {
	fmt.Fprintf(w, "%s %s[%d] = {\n", typ, name, length)
	for i := 0; i < length; i++ {
		w.WriteString(format(i))
		if i != length-1 {
			w.WriteString(",\n")
		}
	}
	w.WriteString("\n};\n")
}
