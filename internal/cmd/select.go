package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/levelsnap/levelsnap/internal/capture"
	"github.com/levelsnap/levelsnap/internal/config"
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/scene"
	"github.com/levelsnap/levelsnap/internal/tui"
)

var selectCmd = &cobra.Command{
	Use:   "select <scene.yaml>",
	Short: "Pick the capture region interactively",
	Long: `Select opens a terminal minimap of the scene where the selection
rectangle is moved and resized with the keyboard. Confirming runs the same
capture pipeline as the capture command; backing out aborts silently.`,
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

		sc, err := scene.Load(fs, args[0])
		if err != nil {
			return err
		}

		if err := tui.Run(session, sc); err != nil {
			if errors.Is(err, errors.ErrSelectionCanceled) {
				log.Debug("selection canceled")
				return nil
			}
			return err
		}

		result, err := capture.New(fs, log).Run(cmd.Context(), session)
		if err != nil {
			log.Error("capture failed", "error", err.Error())
			return err
		}
		if result == nil {
			return nil
		}

		for _, f := range result.Files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	addCaptureFlags(selectCmd)
	rootCmd.AddCommand(selectCmd)
}
