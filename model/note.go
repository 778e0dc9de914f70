package model

// MessageKind classifies the messages handed over by the MIDI reader.
type MessageKind uint8

const (
	OtherMsg MessageKind = iota
	NoteOnMsg
	NoteOffMsg
	TempoMsg
)

// Message is one track message as yielded by the MIDI reader. Delta is
// relative to the previous message of the same track.
type Message struct {
	Delta  uint32
	Kind   MessageKind
	IsMeta bool
	Pitch  uint8

	// microseconds per quarter note, only set for TempoMsg
	Tempo uint32
}

type Track = []Message

// Event is a note-on or note-off at an absolute tick position within its track.
type Event struct {
	Tick  int64
	IsOff bool
	Pitch uint8
}

// RawNote is a matched note-on/note-off pair, in ticks.
type RawNote struct {
	StartTick int64
	EndTick   int64
	Duration  int64
	Pitch     uint8
}

// CombinedNote is a RawNote that may carry a second coincident pitch.
// Secondary equals Primary unless a chord was formed.
type CombinedNote struct {
	StartTick int64
	Duration  int64
	Primary   uint8
	Secondary uint8
	IsChord   bool
}

// FinalizedNote is expressed in milliseconds. Gap is the time from this
// note's start to the next note's start; for the last note it equals Duration.
type FinalizedNote struct {
	Start          float64
	Duration       float64
	Gap            float64
	PrimaryIndex   uint8
	SecondaryIndex uint8
}

// EncodedEntry is the device-side layout of one note: 2 + 2 + 1 + 1 bytes.
type EncodedEntry struct {
	Duration       int
	End            int
	PrimaryIndex   uint8
	SecondaryIndex uint8
}

// Header is everything written to the generated C header.
type Header struct {
	LenNotes    int
	Frequencies []int
	Notes       []EncodedEntry
}
