package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/herotable/internal/application/handlers"
	"github.com/ersonp/herotable/internal/infrastructure/datasource"
	"github.com/ersonp/herotable/internal/infrastructure/portrait"
)

func newPortraitCmd() *cobra.Command {
	var (
		encoder string
		width   int
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "portrait NAME",
		Short: "Show a hero's thumbnail as sixel graphics",
		Long: `Finds the hero whose name matches NAME (exact match first, then the
first name containing it) and draws its thumbnail in the terminal.
The terminal must support sixel graphics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPortrait(cmd, args[0], encoder, width, force)
		},
	}

	cmd.Flags().StringVarP(&encoder, "encoder", "e", portrait.EncoderPaletted, fmt.Sprintf("Sixel encoder %v", portrait.Encoders))
	cmd.Flags().IntVar(&width, "width", portrait.DefaultMaxWidth, "Maximum image width in pixels (0 for original size)")
	cmd.Flags().BoolVar(&force, "force", false, "Write image data even when stdout is not a terminal")

	return cmd
}

func runPortrait(cmd *cobra.Command, name, encoder string, width int, force bool) error {
	if !force {
		if err := requireTerminal("portrait"); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	w, err := portrait.NewWriter(out, encoder)
	if err != nil {
		return err
	}
	w.SetMaxWidth(width)

	return withDeps(func(d *Deps) error {
		handler := handlers.NewPortraitHandler(d.Source, datasource.NewImageFetcher(d.Config.Source.Timeout))

		result, err := handler.Handle(ctx, name)
		if err != nil {
			return err
		}

		d.Logger.Debug("portrait fetched", "name", result.Record.Name, "url", result.Record.ImageURL)

		fmt.Fprintln(out, portraitCaption(result))
		if err := w.Write(result.Image); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return nil
	})
}

// portraitCaption is the line printed above the image.
func portraitCaption(result *handlers.PortraitResult) string {
	r := result.Record
	caption := r.Name
	if r.FullName != "" && r.FullName != r.Name {
		caption += " (" + r.FullName + ")"
	}
	if r.Alignment != "" {
		caption += " - " + r.Alignment
	}
	return caption
}
