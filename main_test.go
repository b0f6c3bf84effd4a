package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/mesh"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestParseFlags checks each flag lands in the configuration.
func TestParseFlags(t *testing.T) {
	cfg, mode, err := parseFlags(newFlagSet(), []string{
		"-width", "80", "-height", "40", "-seed", "abc", "-fill", "50",
		"-smooth", "5", "-wall-threshold", "10", "-room-threshold", "20",
		"-passage-width", "2", "-border", "3", "-square-size", "0.5",
		"-wall-height", "2", "-2d", "-saddle", "bridge", "-renderer", "dump",
	})
	require.NoError(t, err)
	assert.Equal(t, "dump", mode)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, "abc", cfg.Seed)
	assert.False(t, cfg.UseRandomSeed)
	assert.Equal(t, 50, cfg.FillPercent)
	assert.Equal(t, 5, cfg.SmoothLevel)
	assert.Equal(t, 10, cfg.WallThreshold)
	assert.Equal(t, 20, cfg.RoomThreshold)
	assert.Equal(t, 2, cfg.PassageWidth)
	assert.Equal(t, 3, cfg.BorderSize)
	assert.Equal(t, 0.5, cfg.SquareSize)
	assert.Equal(t, 2.0, cfg.WallHeight)
	assert.True(t, cfg.Mesh2D)
	assert.Equal(t, mesh.SaddleBridge, cfg.Saddle)
}

// TestParseFlags_EmptySeedIsRandom checks that no seed means a random one.
func TestParseFlags_EmptySeedIsRandom(t *testing.T) {
	cfg, mode, err := parseFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "tui", mode)
	assert.True(t, cfg.UseRandomSeed)
}

// TestParseFlags_Invalid checks validation and saddle parsing errors.
func TestParseFlags_Invalid(t *testing.T) {
	_, _, err := parseFlags(newFlagSet(), []string{"-fill", "120"})
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)

	_, _, err = parseFlags(newFlagSet(), []string{"-saddle", "diagonal"})
	assert.Error(t, err)
}
