package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/beeptable/converter"
	"github.com/jsphweid/beeptable/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchFlags conversionFlags
var watchInterval time.Duration
var watchQuiet time.Duration

func init() {
	watchFlags.register(watchCmd, true)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "how often the file is checked for changes")
	watchCmd.Flags().DurationVar(&watchQuiet, "quiet", time.Second, "how long the file must stay unchanged before reconverting")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file.mid>",
	Short: "Reconverts a MIDI file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := watchFlags.config(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, cfg, watchInterval, watchQuiet)
	},
}

func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// watch converts cfg.Filename once, then again after every burst of writes
// to it, until ctx is done. Failed conversions are logged and waited out.
func watch(ctx context.Context, cfg model.Config, interval time.Duration, quiet time.Duration) error {
	last, err := modTime(cfg.Filename)
	if err != nil {
		return errors.Wrap(err, "cannot watch")
	}

	var mu sync.Mutex
	stopped := false
	convert := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		out, res, err := converter.ConvertFile(cfg)
		if err != nil {
			logrus.WithError(err).Error("conversion failed")
			return
		}
		logrus.WithFields(logrus.Fields{"output": out, "len_notes": res.Header.LenNotes}).Info("wrote header")
	}
	convert()

	debounced := debounce.New(quiet)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// a debounced call may still be pending
			mu.Lock()
			stopped = true
			mu.Unlock()
			return nil
		case <-ticker.C:
			current, err := modTime(cfg.Filename)
			if err != nil {
				logrus.WithError(err).Warn("cannot stat input")
				continue
			}
			if !current.Equal(last) {
				last = current
				debounced(convert)
			}
		}
	}
}
