package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynet/internal/app"
	"github.com/katalvlaran/citynet/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "citynet",
		Short: "Shortest routes over a weighted city network",
		Long: `citynet loads an undirected road network from a paths file
("city city distance" per line) and answers route queries with Dijkstra's algorithm.

Subcommands:
  route        - answer every query of a pairs file and write a results file
  connections  - list the roads of one or more cities
  generate     - write a synthetic network (and queries) for stress tests`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newRouteCmd(g, outW, errW),
		newConnectionsCmd(g, outW, errW),
		newGenerateCmd(outW),
	)

	return root
}

// loadConfig reads --config when given, else starts from config.Default,
// then applies the global log flags that were set explicitly.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}

	return cfg, nil
}

func newLogger(cfg config.Config, errW io.Writer) *slog.Logger {
	return app.NewLogger(cfg.Log.Level, cfg.Log.Format, errW)
}

// styleOption maps --style onto an app option; "auto" defers to terminal detection.
func styleOption(style string) []app.Option {
	switch style {
	case "always":
		return []app.Option{app.WithStyle(true)}
	case "never":
		return []app.Option{app.WithStyle(false)}
	default:
		return nil
	}
}
