package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contact form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}

			renderer, err := a.htmlRenderer(true)
			if err != nil {
				return err
			}
			srv, err := server.New(cmd.Context(), renderer,
				server.WithLogger(a.logger),
				server.WithAssets(vanilla.AssetsFS()),
			)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context(), a.cfg.Addr, a.cfg.ShutdownGrace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
