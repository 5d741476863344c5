package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/world"
)

// ErrInvalidTuning wraps every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the simulation constants. They are fixed at process start.
type Tuning struct {
	TicksPerSecond      int `yaml:"ticks_per_second"`
	DebugTicksPerSecond int `yaml:"debug_ticks_per_second"`
	AgentMovesPerTick   int `yaml:"agent_moves_per_tick"`
	TicksPerPlantGrowth int `yaml:"ticks_per_plant_growth"`
	TicksPerAgentHunger int `yaml:"ticks_per_agent_hunger"`

	PlantEdible   int `yaml:"plant_edible"`
	AgentHungry   int `yaml:"agent_hungry"`
	AgentStarving int `yaml:"agent_starving"`
	MealSize      int `yaml:"meal_size"`

	ForageRadius int `yaml:"forage_radius"`
	WanderRadius int `yaml:"wander_radius"`
	AgentCount   int `yaml:"agent_count"`

	Bounds    Bounds          `yaml:"bounds"`
	Generator world.Generator `yaml:"generator"`
}

// Bounds is the YAML form of the map rectangle.
type Bounds struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Rect converts to a grid rectangle.
func (b Bounds) Rect() grid.Rect {
	return grid.Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// DefaultTuning returns the reference constants.
func DefaultTuning() Tuning {
	return Tuning{
		TicksPerSecond:      15,
		DebugTicksPerSecond: 100,
		AgentMovesPerTick:   3,
		TicksPerPlantGrowth: 10,
		TicksPerAgentHunger: 5,
		PlantEdible:         70,
		AgentHungry:         40,
		AgentStarving:       20,
		MealSize:            30,
		ForageRadius:        10,
		WanderRadius:        5,
		AgentCount:          15,
		Bounds:              Bounds{Left: 0, Top: 0, Right: 60, Bottom: 40},
		Generator:           world.GeneratorBands,
	}
}

// LoadTuning reads a YAML file over the defaults, so the file only needs the
// keys it changes. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, t.Validate()
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"ticks_per_second", t.TicksPerSecond},
		{"debug_ticks_per_second", t.DebugTicksPerSecond},
		{"agent_moves_per_tick", t.AgentMovesPerTick},
		{"ticks_per_plant_growth", t.TicksPerPlantGrowth},
		{"ticks_per_agent_hunger", t.TicksPerAgentHunger},
		{"meal_size", t.MealSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidTuning, p.name, p.v)
		}
	}

	percent := []struct {
		name string
		v    int
	}{
		{"plant_edible", t.PlantEdible},
		{"agent_hungry", t.AgentHungry},
		{"agent_starving", t.AgentStarving},
	}
	for _, p := range percent {
		if p.v < 0 || p.v > 100 {
			return fmt.Errorf("%w: %s must be within [0,100], got %d", ErrInvalidTuning, p.name, p.v)
		}
	}

	if t.ForageRadius < 0 || t.WanderRadius < 0 || t.AgentCount < 0 {
		return fmt.Errorf("%w: radii and agent_count must not be negative", ErrInvalidTuning)
	}
	if !t.Bounds.Rect().Valid() {
		return fmt.Errorf("%w: %w: %+v", ErrInvalidTuning, world.ErrInvalidBounds, t.Bounds)
	}
	return nil
}

// TickInterval is the scheduler period, 1000/ticks_per_second ms.
func (t Tuning) TickInterval(debug bool) time.Duration {
	tps := t.TicksPerSecond
	if debug {
		tps = t.DebugTicksPerSecond
	}
	return time.Second / time.Duration(tps)
}
