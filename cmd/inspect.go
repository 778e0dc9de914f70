package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jsphweid/beeptable/converter"
	"github.com/jsphweid/beeptable/midi"
	"github.com/jsphweid/beeptable/tuning"
	"github.com/spf13/cobra"
)

var inspectFlags conversionFlags
var inspectMessages bool

func init() {
	inspectFlags.register(inspectCmd, false)
	inspectCmd.Flags().BoolVar(&inspectMessages, "messages", false, "also list the raw messages of the selected tracks")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Shows what a conversion would produce",
	Long:  `Shows tempo, pitch table and the finalized notes without writing a header.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	cfg, err := inspectFlags.config(path)
	if err != nil {
		return err
	}
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	res, err := converter.Convert(s, cfg)
	if err != nil {
		return err
	}

	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgGreen)
	value := color.New(color.FgYellow)

	if inspectMessages {
		title.Fprintln(w, "messages")
		tracks := midi.Tracks(s, cfg.ZeroVelocityOff)
		for _, idx := range cfg.Tracks {
			for _, msg := range tracks[idx] {
				fmt.Fprintf(w, "  [%d] %s\n", idx, midi.Describe(msg))
			}
		}
	}

	title.Fprintln(w, "timing")
	label.Fprint(w, "  tempo        ")
	value.Fprintf(w, "%d us/beat\n", res.Tempo)
	label.Fprint(w, "  ticks/beat   ")
	value.Fprintf(w, "%d\n", res.TicksPerBeat)
	label.Fprint(w, "  ms/tick      ")
	value.Fprintf(w, "%.4f\n", res.MsPerTick)

	title.Fprintf(w, "frequency_table (%d)\n", res.Table.Len())
	for i, p := range res.Table.Pitches() {
		fmt.Fprintf(w, "  %3d  %-4s %5d Hz\n", i, tuning.Name(p), res.Header.Frequencies[i])
	}

	pitches := res.Table.Pitches()
	title.Fprintf(w, "notes (%d stored, len_notes %d)\n", len(res.Header.Notes), res.Header.LenNotes)
	fmt.Fprintf(w, "  %5s %9s %9s %9s  %s\n", "#", "start", "duration", "end", "pitch")
	for i, n := range res.Notes {
		voices := tuning.Name(pitches[n.PrimaryIndex])
		if n.SecondaryIndex != n.PrimaryIndex {
			voices += "+" + tuning.Name(pitches[n.SecondaryIndex])
		}
		line := fmt.Sprintf("  %5d %9.1f %9.1f %9.1f  %s\n", i, n.Start, n.Duration, n.Gap, voices)
		if i >= len(res.Header.Notes) {
			color.New(color.FgRed).Fprint(w, line)
			continue
		}
		fmt.Fprint(w, line)
	}
	return nil
}
