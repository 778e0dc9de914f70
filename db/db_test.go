package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/beeptable/model"
	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	h := model.Header{LenNotes: 12, Frequencies: []int{220, 440, 880}}

	rec := NewRecord("song.mid", "out/audio_song.h", h, 2000)

	assert := assert.New(t)
	_, err := uuid.Parse(rec.Id)
	assert.Nil(err)
	assert.Equal(12, rec.LenNotes)
	assert.Equal(3, rec.TableSize)
	assert.Equal(2000, rec.Budget)
	assert.NotEqual(rec.Id, NewRecord("song.mid", "out/audio_song.h", h, 2000).Id)
}

func TestConversionItem(t *testing.T) {
	rec := model.ConversionRecord{Id: "abc", Input: "a.mid", Output: "audio_a.h", LenNotes: 5, TableSize: 2, Budget: 100}

	item := conversionItem(rec)

	assert := assert.New(t)
	assert.Equal("abc", *item["PK"].S)
	assert.Equal("a.mid", *item["Input"].S)
	assert.Equal("audio_a.h", *item["Output"].S)
	assert.Equal("5", *item["LenNotes"].N)
	assert.Equal("2", *item["TableSize"].N)
	assert.Equal("100", *item["Budget"].N)
}

func TestRecordConversionWithoutRegistry(t *testing.T) {
	t.Setenv("BEEPTABLE_REGISTRY_ENDPOINT", "")
	assert.Nil(t, RecordConversion(model.ConversionRecord{Id: "x"}))
}
