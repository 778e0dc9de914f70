package tuning

import (
	"math"
	"strconv"
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Frequency is the equal tempered frequency of a MIDI pitch with A4 (69) at
// 440 Hz, truncated to whole Hz.
func Frequency(pitch uint8) int {
	return int(math.Pow(2, float64(int(pitch)-69)/12) * 440)
}

// Name returns the human-readable version of a pitch, C4 being 60.
func Name(pitch uint8) string {
	octave := int(pitch)/12 - 1
	return names[int(pitch)%12] + strconv.Itoa(octave)
}
