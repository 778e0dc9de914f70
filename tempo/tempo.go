package tempo

import (
	"github.com/jsphweid/beeptable/constants"
	"github.com/jsphweid/beeptable/model"
)

// Resolve returns the first tempo (microseconds per quarter note) found
// scanning every track in order, or the 120 BPM default.
func Resolve(tracks []model.Track) uint32 {
	for _, track := range tracks {
		for _, msg := range track {
			if msg.Kind == model.TempoMsg && msg.Tempo > 0 {
				return msg.Tempo
			}
		}
	}
	return constants.DefaultTempo
}

func MsPerTick(tempo uint32, ticksPerBeat uint16) float64 {
	return (float64(tempo) / float64(ticksPerBeat)) / 1000
}
