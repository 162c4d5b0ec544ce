package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citynet/internal/app"
)

func newGenerateCmd(outW io.Writer) *cobra.Command {
	var (
		o                 app.GenerateOptions
		pathsOut, pairOut string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network for stress tests",
		Long: `Generate a deterministic network of the given kind and write it in the
paths format to --out (stdout when omitted). With --pairs N, also write N random
queries to --pairs-out.

Kinds: ` + strings.Join(app.Kinds(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if o.Pairs > 0 && pairOut == "" {
				return errors.New("--pairs needs --pairs-out")
			}

			paths := outW
			if pathsOut != "" {
				pf, cerr := os.Create(pathsOut)
				if cerr != nil {
					return cerr
				}
				defer closeInto(pf, &err)
				paths = pf
			}
			var pairs io.Writer
			if pairOut != "" {
				qf, cerr := os.Create(pairOut)
				if cerr != nil {
					return cerr
				}
				defer closeInto(qf, &err)
				pairs = qf
			}

			_, err = app.Generate(paths, pairs, o)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.Kind, "kind", app.KindRandom, "network kind")
	f.IntVar(&o.N, "n", 100, "cities (grid: side length)")
	f.Float64Var(&o.P, "p", 0.05, "road probability for random networks")
	f.Int64Var(&o.Seed, "seed", 1, "random seed")
	f.Int64Var(&o.MinWeight, "min-weight", 1, "shortest road")
	f.Int64Var(&o.MaxWeight, "max-weight", 100, "longest road")
	f.IntVar(&o.Pairs, "pairs", 0, "random queries to write")
	f.StringVarP(&pathsOut, "out", "o", "", "paths file (default stdout)")
	f.StringVar(&pairOut, "pairs-out", "", "pairs file")

	return cmd
}

// closeInto closes c and stores its error in *err unless one is already set.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
