package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/model"
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Archived game results",
		Long: `Archived game results.

Results live in the configured storage. With the default in-memory storage
nothing outlives a single run; set STORAGE_TYPE=redis and REDIS_URL to keep them.`,
	}

	cmd.AddCommand(newResultsListCmd())
	cmd.AddCommand(newResultsShowCmd())
	cmd.AddCommand(newResultsLeaderboardCmd())

	return cmd
}

func newResultsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List finished games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			summaries, err := app.ResultsService.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.ResultListFromModel(summaries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of games (0 for all)")

	return cmd
}

func newResultsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			summary, err := app.ResultsService.Get(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.ResultFromModel(summary))
			return nil
		},
	}
}

func newResultsLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by wins across finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			standings, err := app.ResultsService.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.LeaderboardFromStandings(standings))
			return nil
		},
	}
}
