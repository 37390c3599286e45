package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/levelsnap/levelsnap/internal/capture"
	"github.com/levelsnap/levelsnap/internal/config"
)

var captureCmd = &cobra.Command{
	Use:   "capture <scene.yaml>",
	Short: "Capture a region of a scene to PNG",
	Long: `Capture renders the selected region of a scene off-screen, masks
everything outside it to transparent, and writes the result as PNG.

The selection comes from --region (min corner and size) or from --center
with --size. With --split, one file per named layer is written, suffixed
_<layerName> before the extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bindCaptureFlags(cmd)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		session, err := buildSession(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		result, err := capture.New(afero.NewOsFs(), log).Run(cmd.Context(), session)
		if err != nil {
			log.Error("capture failed", "error", err.Error())
			return err
		}
		if result == nil {
			// no output path: silent abort
			return nil
		}

		for _, f := range result.Files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	addCaptureFlags(captureCmd)
	rootCmd.AddCommand(captureCmd)
}
