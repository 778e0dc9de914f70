package sample

import (
	"bytes"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Note is one note of a generated file, in ticks. A Note with NoOff set only
// gets its note-on, which the converter is expected to drop.
type Note struct {
	Track  int
	Start  uint32
	Length uint32
	Key    uint8
	NoOff  bool
}

type timed struct {
	tick  uint32
	isOff bool
	key   uint8
}

// Create builds a format 1 file with numTracks tracks. The tempo (in BPM, 0
// for none) goes into track 0 so note tracks stay free of meta data.
func Create(resolution uint16, bpm float64, numTracks int, notes []Note) (*smf.SMF, error) {
	if numTracks < 1 {
		return nil, errors.New("need at least one track")
	}

	perTrack := make([][]timed, numTracks)
	for _, n := range notes {
		if n.Track < 0 || n.Track >= numTracks {
			return nil, errors.Errorf("note on track %d but only %d tracks", n.Track, numTracks)
		}
		perTrack[n.Track] = append(perTrack[n.Track], timed{tick: n.Start, key: n.Key})
		if !n.NoOff {
			perTrack[n.Track] = append(perTrack[n.Track], timed{tick: n.Start + n.Length, isOff: true, key: n.Key})
		}
	}

	res := smf.NewSMF1()
	res.TimeFormat = smf.MetricTicks(resolution)
	for i, events := range perTrack {
		// offs before ons on the same tick so back to back notes pair up
		sort.SliceStable(events, func(a, b int) bool {
			if events[a].tick != events[b].tick {
				return events[a].tick < events[b].tick
			}
			return events[a].isOff && !events[b].isOff
		})

		var track smf.Track
		if i == 0 && bpm > 0 {
			track.Add(0, smf.MetaTempo(bpm))
		}
		var last uint32
		for _, evt := range events {
			delta := evt.tick - last
			last = evt.tick
			if evt.isOff {
				track.Add(delta, midi.NoteOff(0, evt.key))
			} else {
				track.Add(delta, midi.NoteOn(0, evt.key, 100))
			}
		}
		track.Close(0)
		res.Tracks = append(res.Tracks, track)
	}
	return res, nil
}

// Demo is a short two-track tune touching every lossy policy: a two note
// chord, a three note chord and an unmatched note-on.
func Demo() (*smf.SMF, error) {
	const q = 480
	notes := []Note{
		{Track: 1, Start: 0, Length: q, Key: 60},
		{Track: 1, Start: 0, Length: q, Key: 64},
		{Track: 1, Start: q, Length: q, Key: 62},
		{Track: 1, Start: 2 * q, Length: q / 2, Key: 64},
		{Track: 1, Start: 2*q + q/2, Length: q / 2, Key: 65},
		{Track: 1, Start: 3 * q, Length: 2 * q, Key: 67},
		{Track: 1, Start: 3 * q, Length: 2 * q, Key: 72},
		{Track: 1, Start: 3 * q, Length: 2 * q, Key: 76},
		{Track: 1, Start: 5 * q, Key: 71, NoOff: true},
		{Track: 1, Start: 5 * q, Length: q, Key: 69},
		{Track: 1, Start: 6 * q, Length: 2 * q, Key: 60},
	}
	return Create(q, 100, 2, notes)
}

func Write(s *smf.SMF, path string) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "could not encode midi file")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}
