//go:build e2e
// +build e2e

package e2e_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/beeptable/cmd"
	"github.com/stretchr/testify/assert"
)

var workDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "beeptable-e2e")
	if err != nil {
		panic(err.Error())
	}
	workDir = dir

	if err := cmd.Run([]string{"sample", filepath.Join(workDir, "demo.mid")}); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(workDir)
	os.Exit(exitVal)
}

func readHeader(t *testing.T, path string) string {
	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(dat)
}

func TestSampleToHeaderE2E(t *testing.T) {
	outDir := filepath.Join(workDir, "out")
	err := cmd.Run([]string{"convert", "--tracks", "1", "--budget", "2000", "--out-dir", outDir, filepath.Join(workDir, "demo.mid")})

	header := readHeader(t, filepath.Join(outDir, "audio_demo.h"))
	lines := strings.Split(header, "\n")

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal("const int len_notes = 6;", lines[0])
	assert.Equal("const uint16_t frequency_table[8] = {", lines[1])
	assert.Contains(header, "Note notes[7] = {\n\t{600,600,0,2},\n")
	assert.True(strings.HasSuffix(header, "\t{1200,1200,0,0}\n};\n"))
}

func TestSameInputSameBytesE2E(t *testing.T) {
	first := filepath.Join(workDir, "first")
	second := filepath.Join(workDir, "second")
	input := filepath.Join(workDir, "demo.mid")

	assert := assert.New(t)
	assert.Nil(cmd.Run([]string{"convert", "--tracks", "1", "--budget", "2000", "--out-dir", first, input}))
	assert.Nil(cmd.Run([]string{"convert", "--tracks", "1", "--budget", "2000", "--out-dir", second, input}))
	assert.Equal(
		readHeader(t, filepath.Join(first, "audio_demo.h")),
		readHeader(t, filepath.Join(second, "audio_demo.h")),
	)
}
