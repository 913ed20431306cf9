package core

import "minicask/internal/index"

type config struct {
	indexType index.IndexType
}

func defaultConfig() *config {
	return &config{indexType: index.Map}
}

// Option configures an engine at Open time.
type Option func(*config)

// WithIndexType selects the in-memory index implementation. The default
// is the hash map index; index.BTree gives sorted Keys output.
func WithIndexType(typ index.IndexType) Option {
	return func(c *config) {
		c.indexType = typ
	}
}
