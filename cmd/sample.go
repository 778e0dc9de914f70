package cmd

import (
	"github.com/jsphweid/beeptable/sample"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Writes a small demo MIDI file",
	Long: `Writes a small demo MIDI file (default demo.mid) with chords, a three
note chord and a note that never ends. Notes are on track 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "demo.mid"
		if len(args) == 1 {
			path = args[0]
		}
		s, err := sample.Demo()
		if err != nil {
			return err
		}
		if err := sample.Write(s, path); err != nil {
			return err
		}
		logrus.WithField("path", path).Info("wrote sample")
		return nil
	},
}
