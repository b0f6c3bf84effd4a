// Package generator builds cave layouts: a cellular automaton grid, region
// denoising, and a room graph whose rooms are all reachable from the main room.
package generator

import (
	"errors"
	"fmt"

	"cavegen/pkg/engine/random"
	"cavegen/pkg/engine/world"
)

// Sentinel errors for generation.
var (
	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("generator: invalid configuration")
	// ErrNoSurvivingRooms indicates denoising removed every empty region.
	ErrNoSurvivingRooms = errors.New("generator: no rooms survived denoising")
	// ErrUnreachableRoom indicates a room could not be linked to the main room.
	ErrUnreachableRoom = errors.New("generator: room cannot be connected to the main room")
)

// Config holds the tunable parameters of one generation pass.
type Config struct {
	Width  int
	Height int

	// Seed drives the pseudo random fill. Ignored when UseRandomSeed is set.
	Seed          string
	UseRandomSeed bool

	// FillPercent is the chance (0-100) that an interior tile starts as Wall.
	// Higher values give smaller caves.
	FillPercent int
	// SmoothLevel is the number of smoothing iterations.
	SmoothLevel int

	// WallThreshold removes wall regions with fewer tiles than this.
	WallThreshold int
	// RoomThreshold fills empty regions with fewer tiles than this.
	RoomThreshold int

	// PassageWidth is the radius of the disk stamped along each passage.
	PassageWidth int
}

// DefaultConfig returns the stock 64x36 cave parameters
func DefaultConfig() Config {
	return Config{
		Width:         64,
		Height:        36,
		FillPercent:   45,
		SmoothLevel:   4,
		WallThreshold: 50,
		RoomThreshold: 50,
		PassageWidth:  4,
	}
}

// Validate checks every field and returns an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Width < world.MinSize || c.Height < world.MinSize:
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, world.MinSize, world.MinSize)
	case c.FillPercent < 0 || c.FillPercent > 100:
		return fmt.Errorf("%w: fill percent %d not in [0,100]", ErrInvalidConfig, c.FillPercent)
	case c.SmoothLevel < 0:
		return fmt.Errorf("%w: negative smooth level %d", ErrInvalidConfig, c.SmoothLevel)
	case c.WallThreshold < 0 || c.RoomThreshold < 0:
		return fmt.Errorf("%w: negative region threshold", ErrInvalidConfig)
	case c.PassageWidth < 0:
		return fmt.Errorf("%w: negative passage width %d", ErrInvalidConfig, c.PassageWidth)
	}
	return nil
}

// Map is the output of a generation pass. It is owned by the caller once
// returned and is never touched by the generator again.
type Map struct {
	Grid     *world.Grid
	Seed     string
	Rooms    *RoomGraph
	Passages []Passage
}

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*Map, error)
	Name() string
}

// Available generators
var (
	Cellular = &CellularGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Cellular

// CellularGenerator generates caves from smoothed random noise
type CellularGenerator struct{}

// Name returns the name of this generator
func (g *CellularGenerator) Name() string {
	return "Cellular Automaton"
}

// Generate runs fill, smoothing, denoising and room connection. All state is
// local to the call.
func (g *CellularGenerator) Generate(cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if cfg.UseRandomSeed {
		seed = random.TimeSeed()
	}

	grid := RandomFill(cfg.Width, cfg.Height, cfg.FillPercent, random.New(seed))
	SmoothN(grid, cfg.SmoothLevel)

	rooms, err := ProcessMap(grid, cfg.WallThreshold, cfg.RoomThreshold)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", seed, err)
	}

	passages, err := ConnectClosestRooms(grid, rooms, cfg.PassageWidth)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", seed, err)
	}

	return &Map{
		Grid:     grid,
		Seed:     seed,
		Rooms:    rooms,
		Passages: passages,
	}, nil
}
