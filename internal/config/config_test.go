package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, TopologyWindows, cfg.Generate.Topology)
	assert.Nil(t, cfg.Export.RemapBase)
	assert.Nil(t, cfg.Graph.Dedup)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	base := 1
	dedup := false

	cfg := DefaultConfig()
	cfg.Graph.Policy = hypergraph.PolicyExplicit
	cfg.Graph.WeightedEdges = true
	cfg.Graph.Dedup = &dedup
	cfg.Generate.Topology = TopologyRandom
	cfg.Generate.EdgeWeight = WeightRange{Min: 2, Max: 9}
	cfg.Export.RemapBase = &base
	cfg.Log.Format = LogFormatJSON

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  nodes: 42\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Generate.Nodes)
	assert.Equal(t, DefaultConfig().Generate.Arity, cfg.Generate.Arity)
	assert.Equal(t, DefaultConfig().Log, cfg.Log)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("graph: [unterminated"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("graph:\n  policy: random\n"), 0o644))
	_, err = Load(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, source, err := LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Empty(t, source)
	assert.Equal(t, DefaultConfig(), cfg)

	local := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(local, []byte("generate:\n  seed: 5\n"), 0o644))
	cfg, source, err = LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Equal(t, local, source)
	assert.Equal(t, int64(5), cfg.Generate.Seed)

	explicit := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("generate:\n  seed: 6\n"), 0o644))
	cfg, source, err = LoadOrDefault(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, explicit, source)
	assert.Equal(t, int64(6), cfg.Generate.Seed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"policy", func(c *Config) { c.Graph.Policy = "shuffled" }},
		{"topology", func(c *Config) { c.Generate.Topology = "ring" }},
		{"node weight range", func(c *Config) { c.Generate.NodeWeight = WeightRange{Min: 3, Max: 2} }},
		{"edge weight range", func(c *Config) { c.Generate.EdgeWeight = WeightRange{Min: 3, Max: 2} }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"rotation", func(c *Config) { c.Log.MaxBackups = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Log.Format = "JSON"
	require.NoError(t, cfg.Validate(), "log format is case-insensitive")
}

func TestGraphOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.GraphOptions()
	require.NoError(t, err)
	g := hypergraph.New(opts...)
	assert.Equal(t, hypergraph.Sequential, g.Policy())
	assert.True(t, g.DuplicateDetection())
	assert.False(t, g.WeightedNodes())

	on := true
	cfg.Graph = GraphConfig{Policy: "Explicit", WeightedNodes: true, WeightedEdges: true, Dedup: &on}
	opts, err = cfg.GraphOptions()
	require.NoError(t, err)
	g = hypergraph.New(opts...)
	assert.Equal(t, hypergraph.Explicit, g.Policy())
	assert.True(t, g.DuplicateDetection())
	assert.True(t, g.WeightedNodes())
	assert.True(t, g.WeightedEdges())

	cfg.Graph.Policy = "nope"
	_, err = cfg.GraphOptions()
	require.ErrorIs(t, err, hypergraph.ErrUnknownPolicy)
}
