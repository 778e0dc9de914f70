package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequency(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(440, Frequency(69))
	assert.Equal(880, Frequency(81))
	assert.Equal(220, Frequency(57))
	// 261.6255...
	assert.Equal(261, Frequency(60))
	// 8.1757...
	assert.Equal(8, Frequency(0))
	// 12543.85...
	assert.Equal(12543, Frequency(127))
}

func TestFrequencyIsMonotonic(t *testing.T) {
	for p := 1; p < 128; p++ {
		assert.GreaterOrEqual(t, Frequency(uint8(p)), Frequency(uint8(p-1)))
	}
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", Name(60))
	assert.Equal("A4", Name(69))
	assert.Equal("C-1", Name(0))
	assert.Equal("G9", Name(127))
}
