package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/extrude"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	distance  float64
	bothSides bool
	solid     bool
	up        bool
	output    string
	ascii     bool
	preview   string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "extrude <profile.yaml>",
		Short:   "Extrude a planar profile into an STL solid or shell",
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Float64VarP(&flags.distance, "distance", "d", 1.0, "signed extrusion distance")
	cmd.Flags().BoolVar(&flags.bothSides, "both-sides", false, "extrude symmetrically about the profile plane")
	cmd.Flags().BoolVar(&flags.solid, "solid", false, "cap closed profiles into a solid")
	cmd.Flags().BoolVar(&flags.up, "up", false, "force the sweep normal upward (world +Z)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "out.stl", "output STL path")
	cmd.Flags().BoolVar(&flags.ascii, "ascii", false, "write ASCII STL instead of binary")
	cmd.Flags().StringVar(&flags.preview, "preview", "", "also write a PNG preview of the profile")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

func run(cmd *cobra.Command, inputPath string, flags *rootFlags) error {
	if flags.verbose {
		extrude.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer extrude.SetLogger(nil)
	}

	doc, err := loadDocument(inputPath)
	if err != nil {
		return err
	}
	curve, err := doc.curve()
	if err != nil {
		return err
	}

	opts := []extrude.Option{
		extrude.WithDistance(flags.distance),
		extrude.WithTolerance(doc.tolerance()),
		extrude.WithAngleTolerance(doc.angleTolerance()),
	}
	if flags.bothSides {
		opts = append(opts, extrude.WithBothSides())
	}
	if flags.solid {
		opts = append(opts, extrude.WithSolid())
	}
	if flags.up {
		opts = append(opts, extrude.WithUpCorrection())
	}

	if flags.preview != "" {
		if err := writePreview(curve, doc.tolerance(), flags.preview); err != nil {
			return err
		}
	}

	brep, err := extrude.PlanarExtrude(curve, opts...)
	if err != nil {
		return err
	}
	if brep == nil {
		// Absent distance: a silent no-op, matching the library.
		return nil
	}

	out, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flags.output, err)
	}
	defer out.Close()
	if flags.ascii {
		err = extrude.WriteSTL(out, brep, "extrusion")
	} else {
		err = extrude.WriteBinarySTL(out, brep)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d faces, volume %.6g\n",
		flags.output, len(brep.Faces), brep.Volume())
	return nil
}

func writePreview(curve *extrude.Polyline, tol float64, path string) error {
	const previewSize = 256
	img, err := extrude.ProfilePreview(curve, previewSize, tol)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}
