package note

import (
	"github.com/jsphweid/beeptable/model"
	"github.com/sirupsen/logrus"
)

// Pair matches every note-on with the first note-off of the same pitch found
// scanning forward from it. Nesting is not required and an off may close
// several ons. A note-on with no later off is dropped.
//
// Notes come back in note-on order, with the distinct pitches in order of
// first appearance.
func Pair(events []model.Event) ([]model.RawNote, []uint8) {
	var notes []model.RawNote
	var pitches []uint8
	seen := make(map[uint8]bool)

	for i, on := range events {
		if on.IsOff {
			continue
		}
		off, ok := findOff(events, i+1, on.Pitch)
		if !ok {
			logrus.WithFields(logrus.Fields{"pitch": on.Pitch, "tick": on.Tick}).Debug("dropping note-on without note-off")
			continue
		}
		if !seen[on.Pitch] {
			seen[on.Pitch] = true
			pitches = append(pitches, on.Pitch)
		}
		notes = append(notes, model.RawNote{
			StartTick: on.Tick,
			EndTick:   events[off].Tick,
			Duration:  events[off].Tick - on.Tick,
			Pitch:     on.Pitch,
		})
	}
	return notes, pitches
}

func findOff(events []model.Event, from int, pitch uint8) (int, bool) {
	for j := from; j < len(events); j++ {
		if events[j].IsOff && events[j].Pitch == pitch {
			return j, true
		}
	}
	return 0, false
}
