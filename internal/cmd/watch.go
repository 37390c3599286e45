package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/levelsnap/levelsnap/internal/capture"
	"github.com/levelsnap/levelsnap/internal/config"
	"github.com/levelsnap/levelsnap/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scene.yaml>",
	Short: "Re-capture whenever the scene file changes",
	Long: `Watch captures the selection once, then re-runs the capture each
time the scene file is written, until interrupted. A failed capture is
logged and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindCaptureFlags(cmd)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		fs := afero.NewOsFs()

		session, err := buildSession(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		pipeline := capture.New(fs, log)
		runOnce := func() error {
			// each re-capture is its own atomic invocation
			_, err := pipeline.Run(cmd.Context(), session)
			return err
		}

		if err := runOnce(); err != nil {
			log.Error("initial capture failed", "error", err.Error())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		return watch.Run(ctx, args[0], debounce, log, runOnce)
	},
}

func init() {
	addCaptureFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
