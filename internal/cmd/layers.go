package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/levelsnap/levelsnap/internal/layers"
	"github.com/levelsnap/levelsnap/internal/scene"
)

var layersCmd = &cobra.Command{
	Use:   "layers <scene.yaml>",
	Short: "List the named layers a scene defines",
	Long: `Layers prints the named layer slots of a scene in slot order,
optionally filtered by a layer mask. Unnamed slots are omitted, matching
what a split capture would export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maskStr, _ := cmd.Flags().GetString("layers")
		mask, err := layers.ParseMask(maskStr)
		if err != nil {
			return err
		}

		sc, err := scene.Load(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		for _, layer := range layers.Enumerate(mask, sc.LayerTable()) {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", layer.Index, layer.Name)
		}
		return nil
	},
}

func init() {
	layersCmd.Flags().String("layers", "all", `layer mask: "all", decimal, or 0x-hex`)
	rootCmd.AddCommand(layersCmd)
}
