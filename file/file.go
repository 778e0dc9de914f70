package file

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// OutputName maps "midi/marble.machine.mid" to "audio_marble.h": everything
// from the first dot of the base name on is dropped.
func OutputName(input string) string {
	base := filepath.Base(input)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return "audio_" + base + ".h"
}

func OutputPath(dir string, input string) string {
	return filepath.Join(dir, OutputName(input))
}

// CreateOutputMap assigns every input its header path and refuses inputs
// that would overwrite each other's output.
func CreateOutputMap(dir string, inputs []string) (map[string]string, error) {
	res := make(map[string]string, len(inputs))
	owner := make(map[string]string, len(inputs))
	for _, input := range inputs {
		out := OutputPath(dir, input)
		if prev, ok := owner[out]; ok && prev != input {
			return nil, errors.Errorf("%v and %v would both be written to %v", prev, input, out)
		}
		owner[out] = input
		res[input] = out
	}
	return res, nil
}
