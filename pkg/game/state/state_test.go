package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/level"
)

func testConfig() level.Config {
	cfg := level.DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = "session"
	cfg.WallThreshold = 10
	cfg.RoomThreshold = 10
	cfg.PassageWidth = 1
	return cfg
}

// failingGenerator always fails, optionally blocking until released.
type failingGenerator struct {
	release chan struct{}
}

func (f *failingGenerator) Name() string { return "failing" }

func (f *failingGenerator) Generate(generator.Config) (*generator.Map, error) {
	if f.release != nil {
		<-f.release
	}
	return nil, errors.New("boom")
}

// TestSession_Regenerate verifies a pass is published and logged.
func TestSession_Regenerate(t *testing.T) {
	s := NewSession(testConfig())
	assert.Nil(t, s.Current())

	lvl, err := s.Regenerate()
	require.NoError(t, err)
	assert.Same(t, lvl, s.Current())
	assert.Equal(t, 1, s.Passes())
	assert.Len(t, s.Messages(), 1)
	assert.False(t, s.Busy())
}

// TestSession_FailureKeepsPrevious verifies a failed pass leaves the old level current.
func TestSession_FailureKeepsPrevious(t *testing.T) {
	s := NewSession(testConfig())
	first, err := s.Regenerate()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.FillPercent = 100
	s.SetConfig(cfg)

	_, err = s.Regenerate()
	assert.ErrorIs(t, err, generator.ErrNoSurvivingRooms)
	assert.Same(t, first, s.Current())
	assert.Equal(t, 1, s.Passes())
}

// TestSession_RegenerateAsync verifies the background pass and the busy guard.
func TestSession_RegenerateAsync(t *testing.T) {
	gen := &failingGenerator{release: make(chan struct{})}
	s := NewSessionWith(gen, testConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	var got error
	started := s.RegenerateAsync(func(_ *level.Level, err error) {
		got = err
		wg.Done()
	})
	require.True(t, started)
	assert.True(t, s.Busy())
	assert.False(t, s.RegenerateAsync(nil))
	_, err := s.Regenerate()
	assert.ErrorIs(t, err, ErrBusy)

	close(gen.release)
	wg.Wait()
	assert.EqualError(t, got, "boom")
	assert.Nil(t, s.Current())
}

// TestSession_AsyncPublishes verifies a background pass ends up current.
func TestSession_AsyncPublishes(t *testing.T) {
	s := NewSession(testConfig())
	done := make(chan *level.Level, 1)
	require.True(t, s.RegenerateAsync(func(lvl *level.Level, err error) {
		assert.NoError(t, err)
		done <- lvl
	}))
	lvl := <-done
	assert.Same(t, lvl, s.Current())
}

// TestSession_MessageLimit verifies only the newest messages are kept.
func TestSession_MessageLimit(t *testing.T) {
	s := NewSession(testConfig())
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.AddMessage(m)
	}
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, s.Messages())
	s.ClearMessages()
	assert.Empty(t, s.Messages())
}
