package encoder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/pitch"
	"github.com/stretchr/testify/assert"
)

func tableOf(n int) pitch.Table {
	var pitches []uint8
	for i := 0; i < n; i++ {
		pitches = append(pitches, uint8(40+i))
	}
	return pitch.NewTable(pitches)
}

func notesOf(n int) []model.FinalizedNote {
	var res []model.FinalizedNote
	for i := 0; i < n; i++ {
		res = append(res, model.FinalizedNote{Start: float64(i * 100), Duration: 90.7, Gap: 100.2})
	}
	return res
}

func TestMaxNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(330, MaxNotes(2000, 10))
	assert.Equal(333, MaxNotes(2000, 0))
	assert.Equal(0, MaxNotes(10, 10))
}

func TestDeclaresOneFewerNoteThanStored(t *testing.T) {
	h := Encode(notesOf(50), tableOf(10), 2000)

	assert := assert.New(t)
	assert.Equal(49, h.LenNotes)
	assert.Len(h.Notes, 50)
	assert.Len(h.Frequencies, 10)
}

func TestTruncatesToBudget(t *testing.T) {
	// (100 - 2*2) / 6 = 16
	h := Encode(notesOf(40), tableOf(2), 100)

	assert := assert.New(t)
	assert.Equal(16, h.LenNotes)
	assert.Len(h.Notes, 16)
}

func TestTimesAreTruncated(t *testing.T) {
	h := Encode(notesOf(2), tableOf(1), 2000)
	assert.Equal(t, model.EncodedEntry{Duration: 90, End: 100}, h.Notes[0])
}

func TestFrequenciesFollowPitchOrder(t *testing.T) {
	h := Encode(notesOf(1), pitch.NewTable([]uint8{81, 69}), 2000)

	assert := assert.New(t)
	assert.Equal([]int{440, 880}, h.Frequencies)
	assert.Equal(0, h.LenNotes)
	assert.Len(h.Notes, 1)
}

func TestWrite(t *testing.T) {
	h := model.Header{
		LenNotes:    1,
		Frequencies: []int{261, 329},
		Notes: []model.EncodedEntry{
			{Duration: 500, End: 500, PrimaryIndex: 0, SecondaryIndex: 1},
			{Duration: 250, End: 250, PrimaryIndex: 1, SecondaryIndex: 1},
		},
	}
	var buf bytes.Buffer

	err := Write(&buf, h)

	expected := "const int len_notes = 1;\n" +
		"const uint16_t frequency_table[2] = {\n" +
		"\t261,\n" +
		"\t329\n" +
		"};\n" +
		"Note notes[2] = {\n" +
		"\t{500,500,0,1},\n" +
		"\t{250,250,1,1}\n" +
		"};\n"
	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(expected, buf.String())
}

func TestWriteEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, model.Header{})
	assert.Nil(t, err)
	assert.Equal(t, "const int len_notes = 0;\nconst uint16_t frequency_table[0] = {\n\n};\nNote notes[0] = {\n\n};\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReportsErrors(t *testing.T) {
	err := Write(failingWriter{}, model.Header{LenNotes: 1})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
