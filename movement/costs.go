package movement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxelpath/voxel"
)

// ErrNonPositiveCost indicates a Costs field that must be strictly positive
// was zero or negative.
var ErrNonPositiveCost = errors.New("movement: cost must be strictly positive")

// ErrNoBreatheMultTooSmall indicates Costs.NoBreatheMult was below 1.
var ErrNoBreatheMultTooSmall = errors.New("movement: no_breathe_mult must be >= 1")

// Costs are the named per-action prices the move generator charges. All
// fields must be positive; NoBreatheMult must additionally be >= 1 since it
// only ever scales a cost up.
type Costs struct {
	BlockWalk      float64
	BlockParkour   float64
	Ascend         float64
	Fall           float64
	MineUnrelated  float64
	MineRequired   float64
	PlaceUnrelated float64
	PlaceRequired  float64
	NoBreatheMult  float64
}

// DefaultCosts returns the stock cost table the original bot used: walking
// and ascending/falling one block are the unit cost, parkour is 1.5x a walk,
// unrelated mine/place actions are heavily discouraged, and swimming without
// air triples every cost incurred while submerged.
func DefaultCosts() Costs {
	return Costs{
		BlockWalk:      1.0,
		BlockParkour:   1.5,
		Ascend:         1.0,
		Fall:           1.0,
		MineUnrelated:  20.0,
		MineRequired:   1.0,
		PlaceUnrelated: 20.0,
		PlaceRequired:  1.0,
		NoBreatheMult:  3.0,
	}
}

// Validate reports ErrNonPositiveCost or ErrNoBreatheMultTooSmall if c
// violates its invariants.
func (c Costs) Validate() error {
	fields := map[string]float64{
		"block_walk":      c.BlockWalk,
		"block_parkour":   c.BlockParkour,
		"ascend":          c.Ascend,
		"fall":            c.Fall,
		"mine_unrelated":  c.MineUnrelated,
		"mine_required":   c.MineRequired,
		"place_unrelated": c.PlaceUnrelated,
		"place_required":  c.PlaceRequired,
		"no_breathe_mult": c.NoBreatheMult,
	}
	for name, v := range fields {
		if v <= 0 {
			return fmt.Errorf("%w: %s=%v", ErrNonPositiveCost, name, v)
		}
	}
	if c.NoBreatheMult < 1 {
		return fmt.Errorf("%w: got %v", ErrNoBreatheMultTooSmall, c.NoBreatheMult)
	}
	return nil
}

// PathConfig is the immutable-for-the-search-lifetime configuration handed
// to the move generator.
type PathConfig struct {
	Costs   Costs
	Parkour bool
}

// DefaultPathConfig returns DefaultCosts with parkour enabled.
func DefaultPathConfig() PathConfig {
	return PathConfig{Costs: DefaultCosts(), Parkour: true}
}

// GlobalContext is the read-only bundle the move generator is handed: the
// path configuration and the world snapshot to query.
type GlobalContext struct {
	PathConfig PathConfig
	World      voxel.WorldView
}
