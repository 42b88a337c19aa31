package dynarray

import (
	"github.com/npillmayer/keyed"
)

// GrowthFactor is the factor by which a full store enlarges its capacity.
const GrowthFactor = 2

// Config configures a Store.
type Config struct {
	// InitialCapacity is the number of slots allocated up front. It must be
	// positive.
	InitialCapacity int
	// OnGrow, if set, is called after the store has enlarged its capacity.
	OnGrow func(from, to int)
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	return keyed.CheckCapacity(cfg.InitialCapacity, "initial capacity")
}
