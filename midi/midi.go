package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jsphweid/beeptable/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrUnsupportedTimeFormat = errors.New("only metric (ticks per quarter note) time division is supported")

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

func TicksPerBeat(s *smf.SMF) (uint16, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, ErrUnsupportedTimeFormat
	}
	if ticks == 0 {
		return 0, errors.New("midi file declares 0 ticks per quarter note")
	}
	return uint16(ticks), nil
}

// Tracks flattens every track of s into the message form used by the
// converter. Track order and message order are preserved.
func Tracks(s *smf.SMF, zeroVelocityOff bool) []model.Track {
	res := make([]model.Track, 0, len(s.Tracks))
	for _, events := range s.Tracks {
		track := make(model.Track, 0, len(events))
		for _, event := range events {
			track = append(track, toMessage(event.Delta, event.Message, zeroVelocityOff))
		}
		res = append(res, track)
	}
	return res
}

func toMessage(delta uint32, m smf.Message, zeroVelocityOff bool) model.Message {
	msg := model.Message{Delta: delta, IsMeta: m.IsMeta()}
	var channel, key, velocity uint8
	var bpm float64
	switch {
	case m.GetNoteOn(&channel, &key, &velocity):
		msg.Kind = model.NoteOnMsg
		msg.Pitch = key
		if zeroVelocityOff && velocity == 0 {
			msg.Kind = model.NoteOffMsg
		}
	case m.GetNoteOff(&channel, &key, &velocity):
		msg.Kind = model.NoteOffMsg
		msg.Pitch = key
	case m.GetMetaTempo(&bpm):
		msg.Kind = model.TempoMsg
		if bpm > 0 {
			// the file stores microseconds per quarter, gomidi hands out BPM
			msg.Tempo = uint32(math.Round(60000000 / bpm))
		}
	}
	return msg
}

func Describe(m model.Message) string {
	switch m.Kind {
	case model.NoteOnMsg:
		return fmt.Sprintf("note_on pitch=%d delta=%d", m.Pitch, m.Delta)
	case model.NoteOffMsg:
		return fmt.Sprintf("note_off pitch=%d delta=%d", m.Pitch, m.Delta)
	case model.TempoMsg:
		return fmt.Sprintf("set_tempo tempo=%d delta=%d", m.Tempo, m.Delta)
	}
	return fmt.Sprintf("other meta=%v delta=%d", m.IsMeta, m.Delta)
}
