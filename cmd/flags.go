package cmd

import (
	"github.com/jsphweid/beeptable/constants"
	"github.com/jsphweid/beeptable/model"
	"github.com/jsphweid/beeptable/util"
	"github.com/spf13/cobra"
)

type conversionFlags struct {
	tracks          string
	budget          int
	outDir          string
	zeroVelocityOff bool
	allDeltas       bool
}

func (f *conversionFlags) register(cmd *cobra.Command, withOutput bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.tracks, "tracks", "t", "1", "comma separated track indices to take notes from")
	flags.IntVarP(&f.budget, "budget", "b", constants.GetBudget(), "bytes available on the device for both tables")
	flags.BoolVar(&f.zeroVelocityOff, "zero-velocity-off", false, "treat note-on with velocity 0 as note-off")
	flags.BoolVar(&f.allDeltas, "all-deltas", false, "advance time on every message, not only on note messages")
	if withOutput {
		flags.StringVarP(&f.outDir, "out-dir", "o", constants.GetOutDir(), "directory the headers are written to")
	}
}

func (f *conversionFlags) config(filename string) (model.Config, error) {
	tracks, err := util.ParseTrackList(f.tracks)
	if err != nil {
		return model.Config{}, err
	}
	return model.Config{
		Filename:        filename,
		Tracks:          tracks,
		Budget:          f.budget,
		OutDir:          f.outDir,
		ZeroVelocityOff: f.zeroVelocityOff,
		AllDeltas:       f.allDeltas,
	}, nil
}
