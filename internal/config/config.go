// Package config holds the driver configuration: input and output files,
// graph and search tuning, metrics export and logging.
//
// Configuration is read from YAML, layered over Default, and validated with
// go-playground/validator struct tags. Command-line flags are applied on top
// by the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/dijkstra"
	"github.com/katalvlaran/citynet/frontier"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultOutput is the results file written when none is configured.
const DefaultOutput = "dijkstraresults.txt"

// Config is the full driver configuration.
type Config struct {
	Paths     string        `yaml:"paths" validate:"required"`
	Pairs     string        `yaml:"pairs" validate:"required"`
	Output    string        `yaml:"output" validate:"required"`
	SelfCheck bool          `yaml:"self_check"`
	Graph     GraphConfig   `yaml:"graph"`
	Search    SearchConfig  `yaml:"search"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Log       LogConfig     `yaml:"log"`
}

// GraphConfig maps onto core.GraphOption values.
type GraphConfig struct {
	AdjacencyCapacity int  `yaml:"adjacency_capacity" validate:"gte=1"`
	FixedAdjacency    bool `yaml:"fixed_adjacency"`
	MaxNameLength     int  `yaml:"max_name_length" validate:"gte=1,lte=4096"`
}

// SearchConfig maps onto dijkstra.Option values. Zero distances mean "no limit".
type SearchConfig struct {
	FrontierCapacity int   `yaml:"frontier_capacity" validate:"gte=1"`
	FixedFrontier    bool  `yaml:"fixed_frontier"`
	MaxDistance      int64 `yaml:"max_distance" validate:"gte=0"`
	InfEdgeThreshold int64 `yaml:"inf_edge_threshold" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus textfile export. An empty File disables it.
type MetricsConfig struct {
	File      string `yaml:"file"`
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// Default returns a configuration with every optional field populated.
// Paths and Pairs are left empty; they have no sensible default.
func Default() Config {
	return Config{
		Output: DefaultOutput,
		Graph: GraphConfig{
			AdjacencyCapacity: core.DefaultAdjacencyCapacity,
			MaxNameLength:     core.DefaultMaxNameLength,
		},
		Search: SearchConfig{
			FrontierCapacity: frontier.DefaultCapacity,
		},
		Metrics: MetricsConfig{Namespace: "citynet"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Parse decodes YAML from r over Default. Unknown keys are rejected.
// An empty document yields Default. The result is not validated.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	return explain(validate.Struct(c))
}

// ValidateNetwork is Validate without the route-only fields Pairs and Output,
// for commands that only load the paths file.
func (c Config) ValidateNetwork() error {
	return explain(validate.StructExcept(c, "Pairs", "Output"))
}

// explain flattens validator errors into one ErrInvalidConfig.
func explain(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msg := ""
	for i, fe := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}

// GraphOptions translates Graph into core options.
func (c Config) GraphOptions() []core.GraphOption {
	opts := []core.GraphOption{
		core.WithAdjacencyCapacity(c.Graph.AdjacencyCapacity),
		core.WithMaxNameLength(c.Graph.MaxNameLength),
	}
	if c.Graph.FixedAdjacency {
		opts = append(opts, core.WithFixedAdjacency())
	}

	return opts
}

// SearchOptions translates Search into dijkstra options.
func (c Config) SearchOptions() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithFrontierCapacity(c.Search.FrontierCapacity)}
	if c.Search.FixedFrontier {
		opts = append(opts, dijkstra.WithoutFrontierGrowth())
	}
	if c.Search.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.Search.MaxDistance))
	}
	if c.Search.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.Search.InfEdgeThreshold))
	}

	return opts
}
