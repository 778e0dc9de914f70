package converter

import (
	"io"
	"os"

	"github.com/jsphweid/beeptable/chord"
	"github.com/jsphweid/beeptable/encoder"
	"github.com/jsphweid/beeptable/event"
	"github.com/jsphweid/beeptable/file"
	"github.com/jsphweid/beeptable/midi"
	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/note"
	"github.com/jsphweid/beeptable/pitch"
	"github.com/jsphweid/beeptable/tempo"
	"github.com/jsphweid/beeptable/timing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoNotes = errors.New("no complete notes in the selected tracks")

// Result keeps the intermediate values of a conversion next to the header.
type Result struct {
	Tempo        uint32
	TicksPerBeat uint16
	MsPerTick    float64
	Table        pitch.Table
	Notes        []model.FinalizedNote
	Header       model.Header
}

func Convert(s *smf.SMF, cfg model.Config) (Result, error) {
	var res Result

	tpb, err := midi.TicksPerBeat(s)
	if err != nil {
		return res, err
	}
	tracks := midi.Tracks(s, cfg.ZeroVelocityOff)

	res.Tempo = tempo.Resolve(tracks)
	res.TicksPerBeat = tpb
	res.MsPerTick = tempo.MsPerTick(res.Tempo, tpb)

	events, err := event.Normalize(tracks, cfg.Tracks, cfg.AllDeltas)
	if err != nil {
		return res, err
	}
	raw, pitches := note.Pair(events)
	if len(raw) == 0 {
		return res, ErrNoNotes
	}
	combined := chord.Combine(raw)

	res.Table = pitch.NewTable(pitches)
	res.Notes, err = timing.Finalize(combined, res.Table, res.MsPerTick)
	if err != nil {
		return res, errors.Wrap(err, "internal error")
	}
	res.Header = encoder.Encode(res.Notes, res.Table, cfg.Budget)

	logrus.WithFields(logrus.Fields{
		"tempo":     res.Tempo,
		"events":    len(events),
		"notes":     len(raw),
		"entries":   len(combined),
		"pitches":   res.Table.Len(),
		"len_notes": res.Header.LenNotes,
	}).Debug("converted")
	return res, nil
}

func ConvertReader(r io.Reader, cfg model.Config) (Result, error) {
	s, err := midi.ReadMidi(r)
	if err != nil {
		return Result{}, err
	}
	return Convert(s, cfg)
}

func Load(cfg model.Config) (Result, error) {
	s, err := midi.ReadMidiFile(cfg.Filename)
	if err != nil {
		return Result{}, err
	}
	res, err := Convert(s, cfg)
	if err != nil {
		return Result{}, errors.Wrap(err, cfg.Filename)
	}
	return res, nil
}

// ConvertFile converts cfg.Filename and writes audio_<name>.h into
// cfg.OutDir, returning the path written.
func ConvertFile(cfg model.Config) (string, Result, error) {
	res, err := Load(cfg)
	if err != nil {
		return "", res, err
	}
	out, err := WriteHeader(cfg.OutDir, cfg.Filename, res.Header)
	return out, res, err
}

func WriteHeader(dir string, input string, h model.Header) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "could not create output dir")
	}
	out := file.OutputPath(dir, input)
	f, err := os.Create(out)
	if err != nil {
		return "", errors.Wrap(err, "could not create header")
	}
	defer f.Close()

	if err := encoder.Write(f, h); err != nil {
		return "", errors.Wrap(err, out)
	}
	return out, f.Close()
}
