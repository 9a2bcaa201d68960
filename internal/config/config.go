// Package config loads and validates the YAML configuration of the hyperlath CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const (
	// CurrentVersion is the config schema version written by Save.
	CurrentVersion = 1

	// DefaultFileName is looked up in the working directory when --config is not given.
	DefaultFileName = "hyperlath.yaml"
)

// Topology names understood by the generate command.
const (
	TopologyWindows  = "windows"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyRandom   = "random"
)

// Log formats understood by the CLI logger.
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatLogfmt = "logfmt"
)

// ErrInvalidConfig is returned by Validate; the message names the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full hyperlath configuration as stored in YAML.
type Config struct {
	Version  int            `yaml:"version"`
	Graph    GraphConfig    `yaml:"graph"`
	Generate GenerateConfig `yaml:"generate"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

// GraphConfig maps onto hypergraph.GraphOption values.
type GraphConfig struct {
	Policy        string `yaml:"policy"` // sequential | explicit
	WeightedNodes bool   `yaml:"weighted_nodes"`
	WeightedEdges bool   `yaml:"weighted_edges"`
	Dedup         *bool  `yaml:"dedup,omitempty"` // nil keeps the policy default
}

// GenerateConfig selects the topology and sizes used by the generate command.
type GenerateConfig struct {
	Topology   string      `yaml:"topology"` // windows | star | complete | random
	Nodes      int         `yaml:"nodes"`
	Edges      int         `yaml:"edges"` // random only
	Arity      int         `yaml:"arity"` // windows, complete, random
	Seed       int64       `yaml:"seed"`
	NodeWeight WeightRange `yaml:"node_weight"`
	EdgeWeight WeightRange `yaml:"edge_weight"`
}

// WeightRange is an inclusive [Min, Max] range; Min == Max gives a constant.
type WeightRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// ExportConfig controls where and how the hMETIS output is written.
type ExportConfig struct {
	Output    string `yaml:"output,omitempty"`     // empty or "-" means stdout
	RemapBase *int   `yaml:"remap_base,omitempty"` // nil writes raw ids
}

// LogConfig configures the CLI logger and its optional rotating file.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug | info | warn | error
	Format     string `yaml:"format"` // text | json | logfmt
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Version: CurrentVersion,
		Graph: GraphConfig{
			Policy: hypergraph.PolicySequential,
		},
		Generate: GenerateConfig{
			Topology:   TopologyWindows,
			Nodes:      8,
			Edges:      8,
			Arity:      3,
			Seed:       1,
			NodeWeight: WeightRange{Min: 1, Max: 1},
			EdgeWeight: WeightRange{Min: 1, Max: 1},
		},
		Log: LogConfig{
			Level:      "info",
			Format:     LogFormatText,
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads path over the defaults. Fields absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it is non-empty, else DefaultFileName from dir
// if that file exists, else the defaults.
func LoadOrDefault(path, dir string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	candidate := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(candidate); err == nil {
		cfg, err := Load(candidate)
		return cfg, candidate, err
	}

	return DefaultConfig(), "", nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks value ranges and enumerations. Structural limits of the
// generators (arity vs. node count and so on) are left to the builder.
func (c Config) Validate() error {
	if _, err := hypergraph.ParsePolicy(c.Graph.Policy); err != nil {
		return fmt.Errorf("graph.policy %q: %w", c.Graph.Policy, ErrInvalidConfig)
	}
	switch c.Generate.Topology {
	case TopologyWindows, TopologyStar, TopologyComplete, TopologyRandom:
	default:
		return fmt.Errorf("generate.topology %q: %w", c.Generate.Topology, ErrInvalidConfig)
	}
	if c.Generate.NodeWeight.Max < c.Generate.NodeWeight.Min {
		return fmt.Errorf("generate.node_weight max < min: %w", ErrInvalidConfig)
	}
	if c.Generate.EdgeWeight.Max < c.Generate.EdgeWeight.Min {
		return fmt.Errorf("generate.edge_weight max < min: %w", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must be >= 0: %w", ErrInvalidConfig)
	}

	return nil
}

// GraphOptions converts the graph section into hypergraph options.
func (c Config) GraphOptions() ([]hypergraph.GraphOption, error) {
	policy, err := hypergraph.ParsePolicy(c.Graph.Policy)
	if err != nil {
		return nil, err
	}
	opts := []hypergraph.GraphOption{hypergraph.WithIDPolicy(policy)}
	if c.Graph.WeightedNodes {
		opts = append(opts, hypergraph.WithWeightedNodes())
	}
	if c.Graph.WeightedEdges {
		opts = append(opts, hypergraph.WithWeightedEdges())
	}
	if c.Graph.Dedup != nil {
		opts = append(opts, hypergraph.WithDuplicateDetection(*c.Graph.Dedup))
	}

	return opts, nil
}
