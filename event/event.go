package event

import (
	"github.com/jsphweid/beeptable/model"
	"github.com/pkg/errors"
)

var ErrTrackOutOfRange = errors.New("track index out of range")

// Normalize keeps only note-on/note-off messages of the selected tracks and
// rewrites their relative deltas to absolute ticks. Tracks are emitted one
// after another in selection order, never merged by time.
//
// Unless allDeltas is set only note messages advance the clock, so the
// delta of any other message is lost.
func Normalize(tracks []model.Track, selected []int, allDeltas bool) ([]model.Event, error) {
	var events []model.Event
	for _, idx := range selected {
		if idx < 0 || idx >= len(tracks) {
			return nil, errors.Wrapf(ErrTrackOutOfRange, "track %d (file has %d)", idx, len(tracks))
		}

		var absTicks int64
		for _, msg := range tracks[idx] {
			isNote := !msg.IsMeta && (msg.Kind == model.NoteOnMsg || msg.Kind == model.NoteOffMsg)
			if isNote || allDeltas {
				absTicks += int64(msg.Delta)
			}
			if !isNote {
				continue
			}
			events = append(events, model.Event{
				Tick:  absTicks,
				IsOff: msg.Kind == model.NoteOffMsg,
				Pitch: msg.Pitch,
			})
		}
	}
	return events, nil
}
