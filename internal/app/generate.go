package app

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/katalvlaran/citynet/builder"
	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/loader"
)

// Network kinds understood by Generate.
const (
	KindRandom   = "random"
	KindGrid     = "grid"
	KindComplete = "complete"
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
)

var (
	// ErrUnknownKind indicates a Generate kind outside the list above.
	ErrUnknownKind = errors.New("app: unknown network kind")

	// ErrBadWeightRange indicates MinWeight < 1 or MaxWeight < MinWeight.
	ErrBadWeightRange = errors.New("app: weight range must satisfy 1 <= min <= max")
)

// GenerateOptions describes a synthetic network and query batch.
type GenerateOptions struct {
	Kind      string
	N         int     // cities; for grids, the side length
	P         float64 // edge probability for random networks
	Seed      int64
	MinWeight int64
	MaxWeight int64
	Pairs     int // random queries to emit; 0 for none
}

// Kinds lists the accepted GenerateOptions.Kind values in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

var constructors = map[string]func(o GenerateOptions) builder.Constructor{
	KindRandom:   func(o GenerateOptions) builder.Constructor { return builder.RandomSparse(o.N, o.P) },
	KindGrid:     func(o GenerateOptions) builder.Constructor { return builder.Grid(o.N, o.N) },
	KindComplete: func(o GenerateOptions) builder.Constructor { return builder.Complete(o.N) },
	KindPath:     func(o GenerateOptions) builder.Constructor { return builder.Path(o.N) },
	KindCycle:    func(o GenerateOptions) builder.Constructor { return builder.Cycle(o.N) },
	KindStar:     func(o GenerateOptions) builder.Constructor { return builder.Star(o.N) },
	KindWheel:    func(o GenerateOptions) builder.Constructor { return builder.Wheel(o.N) },
}

// Generate builds a synthetic network and writes it to paths in the paths
// format. When o.Pairs > 0 and pairs is non-nil, that many random queries
// are written to pairs. The same options always produce the same files.
//
// Cities are named A, B, ..., Z, AA, AB, ...; grid cities are "row,col".
// Cities left without a road do not appear in the paths file.
func Generate(paths, pairs io.Writer, o GenerateOptions) (*core.Graph, error) {
	mk, ok := constructors[o.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, o.Kind)
	}
	if o.MinWeight < 1 || o.MaxWeight < o.MinWeight {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadWeightRange, o.MinWeight, o.MaxWeight)
	}
	rng := rand.New(rand.NewSource(o.Seed))
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithExcelColumnIDs(),
		builder.WithUniformWeight(o.MinWeight, o.MaxWeight),
	}, mk(o))
	if err != nil {
		return nil, fmt.Errorf("app: generate %s: %w", o.Kind, err)
	}
	if err = loader.WritePaths(paths, g); err != nil {
		return nil, err
	}
	if o.Pairs <= 0 || pairs == nil {
		return g, nil
	}

	names := g.Vertices()
	for i := 0; i < o.Pairs; i++ {
		a, b := names[rng.Intn(len(names))], names[rng.Intn(len(names))]
		if _, err = fmt.Fprintf(pairs, "%s\t%s\n", a, b); err != nil {
			return nil, fmt.Errorf("app: write pairs: %w", err)
		}
	}

	return g, nil
}
