package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynet/internal/app"
)

func newRouteCmd(g *globalFlags, outW, errW io.Writer) *cobra.Command {
	var (
		paths, pairs, out, metricsFile, style string
		selfCheck                             bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Answer every query of a pairs file",
		Long: `Load the network from --paths, answer every "start end" query of --pairs,
print the results and write them to --out.

Flags override the matching keys of --config.

Examples:
  citynet route --paths ukcitypaths.txt --pairs ukdijkstrapairs.txt
  citynet route --config citynet.yaml --self-check --metrics-file citynet.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("paths") {
				cfg.Paths = paths
			}
			if f.Changed("pairs") {
				cfg.Pairs = pairs
			}
			if f.Changed("out") {
				cfg.Output = out
			}
			if f.Changed("metrics-file") {
				cfg.Metrics.File = metricsFile
			}
			if f.Changed("self-check") {
				cfg.SelfCheck = selfCheck
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			a := app.New(cfg, outW, newLogger(cfg, errW), styleOption(style)...)
			_, err = a.Route(cmd.Context())

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&paths, "paths", "", "paths file: city city distance")
	f.StringVar(&pairs, "pairs", "", "pairs file: start end")
	f.StringVarP(&out, "out", "o", "", "results file (default dijkstraresults.txt)")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	f.BoolVar(&selfCheck, "self-check", false, "exercise the error paths before routing")
	f.StringVar(&style, "style", "auto", "terminal styling: auto, always, never")

	return cmd
}
