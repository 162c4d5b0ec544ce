package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynet/internal/app"
)

func newConnectionsCmd(g *globalFlags, outW, errW io.Writer) *cobra.Command {
	var paths, style string
	cmd := &cobra.Command{
		Use:   "connections CITY...",
		Short: "List the roads of one or more cities",
		Example: `  citynet connections --paths ukcitypaths.txt York Birmingham`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("paths") {
				cfg.Paths = paths
			}
			if err = cfg.ValidateNetwork(); err != nil {
				return err
			}

			return app.New(cfg, outW, newLogger(cfg, errW), styleOption(style)...).Connections(args)
		},
	}
	cmd.Flags().StringVar(&paths, "paths", "", "paths file: city city distance")
	cmd.Flags().StringVar(&style, "style", "auto", "terminal styling: auto, always, never")

	return cmd
}
