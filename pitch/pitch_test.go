package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableIsSortedAndDeduplicated(t *testing.T) {
	table := NewTable([]uint8{72, 48, 60, 48})

	assert := assert.New(t)
	assert.Equal([]uint8{48, 60, 72}, table.Pitches())
	assert.Equal(3, table.Len())
}

func TestIndex(t *testing.T) {
	table := NewTable([]uint8{67, 60, 64})
	assert := assert.New(t)

	i, ok := table.Index(60)
	assert.True(ok)
	assert.Equal(0, i)

	i, ok = table.Index(67)
	assert.True(ok)
	assert.Equal(2, i)

	_, ok = table.Index(61)
	assert.False(ok)
}

func TestNewTableDoesNotTouchInput(t *testing.T) {
	in := []uint8{3, 1, 2}
	NewTable(in)
	assert.Equal(t, []uint8{3, 1, 2}, in)
}

func TestEmptyTable(t *testing.T) {
	table := NewTable(nil)
	assert.Equal(t, 0, table.Len())
	_, ok := table.Index(0)
	assert.False(t, ok)
}
