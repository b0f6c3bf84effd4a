// Package level runs the full generation pipeline: grid generation, room
// connection, static border and meshing. The result is an immutable snapshot
// handed to renderers and collision builders.
package level

import (
	"fmt"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/mesh"
)

// Config holds the parameters of one GenerateMap call.
type Config struct {
	generator.Config

	// BorderSize is the thickness of the cosmetic wall frame added before
	// meshing. It takes no part in region or room computation.
	BorderSize int
	SquareSize float64
	WallHeight float64
	// Mesh2D lays the mesh on the X/Y plane and builds edge colliders
	// instead of extruded walls.
	Mesh2D bool
	Saddle mesh.SaddleMode
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		Config:     generator.DefaultConfig(),
		BorderSize: 1,
		SquareSize: 1,
		WallHeight: mesh.DefaultWallHeight,
	}
}

// Validate checks generator and mesh parameters
func (c Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	switch {
	case c.BorderSize < 0:
		return fmt.Errorf("%w: negative border size %d", generator.ErrInvalidConfig, c.BorderSize)
	case c.SquareSize <= 0:
		return fmt.Errorf("%w: square size %v must be positive", generator.ErrInvalidConfig, c.SquareSize)
	case c.WallHeight < 0:
		return fmt.Errorf("%w: negative wall height %v", generator.ErrInvalidConfig, c.WallHeight)
	}
	return nil
}

// Plane returns the mesh plane selected by Mesh2D
func (c Config) Plane() mesh.Plane {
	if c.Mesh2D {
		return mesh.PlaneXY
	}
	return mesh.PlaneXZ
}

// Level is the finished output of one pass. Nothing mutates it after
// GenerateMap returns.
type Level struct {
	Config Config
	// Seed is the seed actually used, which differs from Config.Seed when
	// UseRandomSeed is set.
	Seed string

	// Grid is the carved map without the static border.
	Grid     *world.Grid
	Bordered *world.Grid
	Rooms    *generator.RoomGraph
	Passages []generator.Passage

	Mesh *mesh.MeshData
	// Walls is set for 3D meshes, Colliders for 2D meshes.
	Walls     *mesh.WallMesh
	Colliders []mesh.EdgePath
}

// GenerateMap runs every stage with the default generator
func GenerateMap(cfg Config) (*Level, error) {
	return Generate(generator.DefaultGenerator, cfg)
}

// Generate runs every stage with gen
func Generate(gen generator.GridGenerator, cfg Config) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := gen.Generate(cfg.Config)
	if err != nil {
		return nil, err
	}

	bordered, err := m.Grid.WithBorder(cfg.BorderSize)
	if err != nil {
		return nil, err
	}

	plane := cfg.Plane()
	data, err := mesh.Generate(bordered, mesh.Options{
		SquareSize: cfg.SquareSize,
		Plane:      plane,
		Saddle:     cfg.Saddle,
	})
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", m.Seed, err)
	}

	lvl := &Level{
		Config:   cfg,
		Seed:     m.Seed,
		Grid:     m.Grid,
		Bordered: bordered,
		Rooms:    m.Rooms,
		Passages: m.Passages,
		Mesh:     data,
	}
	if cfg.Mesh2D {
		lvl.Colliders = mesh.EdgeColliders(data)
	} else {
		lvl.Walls = mesh.ExtrudeWalls(data, cfg.WallHeight, plane)
	}
	return lvl, nil
}
