package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/config"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/tui"
)

func newGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game <player_list.toml> <world.toml>",
		Short: "Play a game in the terminal",
		Long: `Play a game in the terminal.

The finished game is archived in the configured storage. With the default
in-memory storage the archive ends with the process; set STORAGE_TYPE=redis
and REDIS_URL to keep results for the results and serve commands.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := config.LoadRoster(args[0])
			if err != nil {
				return err
			}
			world, err := config.LoadWorld(args[1], logger)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			controller, err := app.NewGame(world, roster, printer)
			if err != nil {
				return err
			}

			if err := tui.Run(cmd.Context(), controller, logger); err != nil {
				return err
			}

			summary := controller.Summary()
			rankings := make([]response.Ranking, 0, len(summary.Rankings))
			for _, r := range summary.Rankings {
				rankings = append(rankings, response.Ranking{Player: r.Player, Rank: r.Rank})
			}
			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(GameOutcome{
				ID:       string(controller.ID()),
				Finished: controller.Phase() == model.PhaseFinished,
				Turns:    controller.Turn(),
				Rankings: rankings,
			})
			return nil
		},
	}
}
