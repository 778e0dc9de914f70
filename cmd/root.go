package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "beeptable",
	Short: "MIDI to Arduino note tables",
	Long: `beeptable turns the notes of a MIDI file into a C header holding a
frequency table and a note table small enough for an Arduino driving a buzzer.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dropped notes and pipeline stats")
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// Run executes the command line given in args.
func Run(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
