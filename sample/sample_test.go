package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateRejectsUnknownTrack(t *testing.T) {
	_, err := Create(96, 120, 1, []Note{{Track: 1, Key: 60}})
	assert.NotNil(t, err)

	_, err = Create(96, 120, 0, nil)
	assert.NotNil(t, err)
}

func TestCreateOrdersEventsByTick(t *testing.T) {
	s, err := Create(96, 0, 1, []Note{
		{Start: 10, Length: 10, Key: 62},
		{Start: 0, Length: 10, Key: 60},
	})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(smf.MetricTicks(96), s.TimeFormat)

	var deltas []uint32
	var keys []uint8
	for _, ev := range s.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) || ev.Message.GetNoteOff(&ch, &key, &vel) {
			deltas = append(deltas, ev.Delta)
			keys = append(keys, key)
		}
	}
	// the off of 60 lands before the on of 62
	assert.Equal([]uint32{0, 10, 0, 10}, deltas)
	assert.Equal([]uint8{60, 60, 62, 62}, keys)
}

func TestWriteDemo(t *testing.T) {
	s, err := Demo()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "demo.mid")

	assert := assert.New(t)
	assert.Nil(Write(s, path))

	dat, err := os.ReadFile(path)
	assert.Nil(err)
	assert.Equal("MThd", string(dat[:4]))
}
