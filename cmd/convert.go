package cmd

import (
	"github.com/jsphweid/beeptable/converter"
	"github.com/jsphweid/beeptable/db"
	"github.com/jsphweid/beeptable/file"
	"github.com/jsphweid/beeptable/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertFlags conversionFlags

func init() {
	convertFlags.register(convertCmd, true)
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.mid|dir>...",
	Short: "Writes audio_<name>.h for every MIDI file",
	Long: `Writes audio_<name>.h for every MIDI file given. The header declares
len_notes, frequency_table and notes, sized to fit the memory budget.
Directories are searched for .mid and .midi files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertAll(args)
	},
}

func convertAll(args []string) error {
	inputs, err := util.ExpandMidiPaths(args)
	if err != nil {
		return err
	}
	outputs, err := file.CreateOutputMap(convertFlags.outDir, inputs)
	if err != nil {
		return err
	}

	done := make(map[string]bool)
	for _, input := range inputs {
		if done[input] {
			continue
		}
		done[input] = true

		cfg, err := convertFlags.config(input)
		if err != nil {
			return err
		}
		out, res, err := converter.ConvertFile(cfg)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"file":      len(done),
			"of":        len(outputs),
			"output":    out,
			"len_notes": res.Header.LenNotes,
			"pitches":   res.Table.Len(),
		}).Info("wrote header")

		if err := db.RecordConversion(db.NewRecord(input, out, res.Header, cfg.Budget)); err != nil {
			logrus.WithError(err).Warn("could not record conversion")
		}
	}
	return nil
}
