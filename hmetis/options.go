package hmetis

// Option customizes one export.
type Option func(*exportConfig)

type exportConfig struct {
	remap bool
	base  int
}

// WithRemappedIDs renumbers nodes to base, base+1, ... following ascending
// node id, and rewrites edge members accordingly. hMETIS itself numbers
// vertices from 1. Without this option ids are written verbatim.
func WithRemappedIDs(base int) Option {
	return func(c *exportConfig) {
		c.remap = true
		c.base = base
	}
}

func newExportConfig(opts ...Option) exportConfig {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
