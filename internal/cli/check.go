package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/config"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <world.toml>",
		Short: "Validate a board file and print its squares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := config.LoadWorld(args[0], logger)
			if err != nil {
				return err
			}

			areas := world.Areas()
			text := make([]string, 0, len(areas))
			for _, area := range areas {
				text = append(text, area.Describe(printer))
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(BoardCheck{
				Path:  args[0],
				Board: response.BoardFromWorld(world, printer),
				Text:  text,
			})
			return nil
		},
	}
}
