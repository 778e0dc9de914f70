package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// ParseTrackList parses "1,2, 4" into track indices. Order and duplicates are
// kept since tracks are processed exactly as listed.
func ParseTrackList(s string) ([]int, error) {
	var res []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid track %q", part)
		}
		if n < 0 {
			return nil, errors.Errorf("invalid track %q", part)
		}
		res = append(res, n)
	}
	if len(res) == 0 {
		return nil, errors.New("no tracks selected")
	}
	return res, nil
}

func FormatTrackList(tracks []int) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

func isMidi(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mid" || ext == ".midi"
}

// ExpandMidiPaths replaces every directory in paths with the MIDI files
// found under it, sorted. Plain files are kept as given.
func ExpandMidiPaths(paths []string) ([]string, error) {
	var res []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			res = append(res, path)
			continue
		}
		found, err := GatherAllMidiPaths(path)
		if err != nil {
			return nil, err
		}
		res = append(res, found...)
	}
	return res, nil
}

func GatherAllMidiPaths(path string) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, "Error walking")
		}
		if !d.IsDir() && isMidi(s) {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}
