package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/sugoroku/internal/config"
	"github.com/mcoot/sugoroku/internal/export"
)

const (
	exportTeX  = export.FormatTeX
	exportHTML = export.FormatHTML
)

func newExportCmd(use, short string, format export.Format) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <world.toml>",
		Short: short,
		Long: short + `.

The document is written next to the board file with the extension replaced,
so boards/trip.toml becomes boards/trip.` + string(format) + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := config.LoadWorld(args[0], logger)
			if err != nil {
				return err
			}

			path, err := export.WriteFile(args[0], format, world, printer)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(ExportResult{Format: string(format), Path: path})
			return nil
		},
	}
}
