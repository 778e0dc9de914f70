package chord

import (
	"github.com/jsphweid/beeptable/model"
	"github.com/sirupsen/logrus"
)

// Combine folds notes that share a start tick into the earliest of them.
// The first later note on the same tick becomes the secondary pitch, any
// further ones are consumed and dropped since an entry only holds two
// pitches. A consumed note never becomes a primary itself.
func Combine(notes []model.RawNote) []model.CombinedNote {
	consumed := make([]bool, len(notes))
	var res []model.CombinedNote

	for i, n := range notes {
		if consumed[i] {
			continue
		}
		c := model.CombinedNote{
			StartTick: n.StartTick,
			Duration:  n.Duration,
			Primary:   n.Pitch,
			Secondary: n.Pitch,
		}
		for j := i + 1; j < len(notes); j++ {
			if notes[j].StartTick != n.StartTick {
				continue
			}
			consumed[j] = true
			if c.IsChord {
				logrus.WithFields(logrus.Fields{
					"tick":  n.StartTick,
					"pitch": notes[j].Pitch,
				}).Debug("dropping third voice of chord")
				continue
			}
			c.Secondary = notes[j].Pitch
			c.IsChord = true
		}
		res = append(res, c)
	}
	return res
}
