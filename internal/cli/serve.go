package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/sugoroku/internal/api"
	"github.com/mcoot/sugoroku/internal/config"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve <world.toml>",
		Short: "Serve the board and archived results as JSON over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := config.LoadWorld(args[0], logger)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			router := api.NewRouter(api.RouterConfig{
				Logger:         logger,
				World:          world,
				Printer:        printer,
				ResultsService: app.ResultsService,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Host = host
			serverConfig.Port = cfg.HTTPPort
			if cmd.Flags().Changed("port") {
				serverConfig.Port = port
			}
			server := api.NewServer(router, serverConfig, logger)

			logger.Info("serving board",
				slog.String("title", world.Title()),
				slog.String("addr", server.Addr()),
			)
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Address to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (env: SUGOROKU_HTTP_PORT)")

	return cmd
}
