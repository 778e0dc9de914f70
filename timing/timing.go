package timing

import (
	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/pitch"
	"github.com/pkg/errors"
)

var ErrPitchNotInTable = errors.New("pitch missing from pitch table")

// Finalize converts ticks to milliseconds and resolves pitches to table
// indices. Each note's Gap is measured to the start of the note after it;
// the last note has nothing to measure against and reuses its Duration.
//
// The table must hold every pitch the notes use. A miss means the table was
// built from other notes and is returned as ErrPitchNotInTable.
func Finalize(notes []model.CombinedNote, table pitch.Table, msPerTick float64) ([]model.FinalizedNote, error) {
	res := make([]model.FinalizedNote, 0, len(notes))
	for i, n := range notes {
		primary, err := lookup(table, n.Primary)
		if err != nil {
			return nil, err
		}
		secondary, err := lookup(table, n.Secondary)
		if err != nil {
			return nil, err
		}

		f := model.FinalizedNote{
			Start:          float64(n.StartTick) * msPerTick,
			Duration:       float64(n.Duration) * msPerTick,
			PrimaryIndex:   primary,
			SecondaryIndex: secondary,
		}
		if i < len(notes)-1 {
			f.Gap = float64(notes[i+1].StartTick-n.StartTick) * msPerTick
		} else {
			f.Gap = f.Duration
		}
		res = append(res, f)
	}
	return res, nil
}

func lookup(table pitch.Table, p uint8) (uint8, error) {
	i, ok := table.Index(p)
	if !ok {
		return 0, errors.Wrapf(ErrPitchNotInTable, "pitch %d", p)
	}
	return uint8(i), nil
}
