package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levelsnap/levelsnap/internal/capture"
	"github.com/levelsnap/levelsnap/internal/config"
	"github.com/levelsnap/levelsnap/internal/errors"
	"github.com/levelsnap/levelsnap/internal/geom"
)

// addCaptureFlags registers the flags shared by every command that frames a
// region.
func addCaptureFlags(cmd *cobra.Command) {
	// flag defaults mirror config.Default(): an unchanged bound pflag's
	// default outranks viper.SetDefault
	defaults := config.Default()

	cmd.Flags().String("region", "", "selection as min corner and size: x,y,w,h (world units)")
	cmd.Flags().String("center", "", "selection center: x,y (world units)")
	cmd.Flags().String("size", "", "selection size: w,h (world units)")
	cmd.Flags().StringP("out", "o", "", "output PNG path (empty aborts silently)")

	cmd.Flags().Float32("ppu", defaults.Capture.PixelsPerUnit, "pixels per world unit")
	cmd.Flags().Float32("margin", defaults.Capture.Margin, "world-space padding around the selection")
	cmd.Flags().String("layers", defaults.Capture.Layers, `layer mask: "all", decimal, or 0x-hex`)
	cmd.Flags().Bool("split", defaults.Capture.Split, "write one PNG per named layer")
	cmd.Flags().Bool("trim", defaults.Capture.TrimToColliders, "shrink the selection to the collider union")
	cmd.Flags().String("clear-color", defaults.Capture.ClearColor, "hex color for masked border pixels (default transparent)")
}

// bindCaptureFlags binds the parameter flags to their config keys so flag,
// env var, and config file all feed the same setting. Called at run time by
// the executing command: several commands share these keys, and only the
// running command's flags may win.
func bindCaptureFlags(cmd *cobra.Command) {
	_ = viper.BindPFlag("capture.pixels_per_unit", cmd.Flags().Lookup("ppu"))
	_ = viper.BindPFlag("capture.margin", cmd.Flags().Lookup("margin"))
	_ = viper.BindPFlag("capture.layers", cmd.Flags().Lookup("layers"))
	_ = viper.BindPFlag("capture.split", cmd.Flags().Lookup("split"))
	_ = viper.BindPFlag("capture.trim_to_colliders", cmd.Flags().Lookup("trim"))
	_ = viper.BindPFlag("capture.clear_color", cmd.Flags().Lookup("clear-color"))
}

// buildSession assembles a capture session from the effective configuration
// and the command's flags. The returned session may still have empty bounds
// when no region flags were given; interactive commands seed it themselves.
func buildSession(cmd *cobra.Command, cfg *config.Config, scenePath string) (*capture.Session, error) {
	s := capture.NewSession(scenePath)
	s.Params.PixelsPerUnit = cfg.Capture.PixelsPerUnit
	s.Params.Margin = cfg.Capture.Margin
	s.Split = cfg.Capture.Split
	s.TrimToColliders = cfg.Capture.TrimToColliders

	s.Mask = cfg.LayerMask()

	clearColor, err := capture.ParseClearColor(cfg.Capture.ClearColor)
	if err != nil {
		return nil, err
	}
	s.ClearColor = clearColor

	bounds, ok, err := regionFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if ok {
		s.SetBounds(bounds)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		s.OutputPath = resolveOutput(cfg, out)
	}

	return s, nil
}

// regionFromFlags reads the selection from --region or --center/--size.
// ok is false when neither was given.
func regionFromFlags(cmd *cobra.Command) (bounds geom.WorldBounds, ok bool, err error) {
	region, _ := cmd.Flags().GetString("region")
	center, _ := cmd.Flags().GetString("center")
	size, _ := cmd.Flags().GetString("size")

	switch {
	case region != "":
		if center != "" || size != "" {
			return bounds, false, errors.NewValidationError("region", "cannot combine --region with --center/--size")
		}
		v, err := parseFloats(region, 4)
		if err != nil {
			return bounds, false, errors.NewValidationError("region", err.Error())
		}
		return geom.BoundsFromRect(geom.NewRect(v[0], v[1], v[2], v[3])), true, nil

	case center != "" || size != "":
		if center == "" || size == "" {
			return bounds, false, errors.NewValidationError("region", "--center and --size must be given together")
		}
		c, err := parseFloats(center, 2)
		if err != nil {
			return bounds, false, errors.NewValidationError("center", err.Error())
		}
		sz, err := parseFloats(size, 2)
		if err != nil {
			return bounds, false, errors.NewValidationError("size", err.Error())
		}
		return geom.WorldBounds{
			Center: geom.Vec2{X: c[0], Y: c[1]},
			Size:   geom.Vec2{X: sz[0], Y: sz[1]},
		}, true, nil
	}

	return bounds, false, nil
}

// resolveOutput prepends the configured output directory to relative paths.
func resolveOutput(cfg *config.Config, out string) string {
	if filepath.IsAbs(out) || cfg.Output.Dir == "" || cfg.Output.Dir == "." {
		return out
	}
	return filepath.Join(cfg.Output.Dir, out)
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float32, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out[i] = float32(v)
	}
	return out, nil
}
