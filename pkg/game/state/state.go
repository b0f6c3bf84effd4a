// Package state holds the viewer session: the active configuration, the
// latest published level and a short message log.
package state

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/level"
)

// ErrBusy is returned when a regeneration is requested while one is running.
var ErrBusy = errors.New("state: generation already in progress")

const maxMessages = 5

// Session owns the level shown by a renderer. A finished level is published
// atomically and replaced as a whole, so readers never see a partial result.
type Session struct {
	gen generator.GridGenerator

	mu       sync.Mutex
	cfg      level.Config
	messages []string
	passes   int

	current atomic.Pointer[level.Level]
	busy    atomic.Bool
}

// NewSession creates a session using the default generator
func NewSession(cfg level.Config) *Session {
	return NewSessionWith(generator.DefaultGenerator, cfg)
}

// NewSessionWith creates a session using gen
func NewSessionWith(gen generator.GridGenerator, cfg level.Config) *Session {
	return &Session{
		gen:      gen,
		cfg:      cfg,
		messages: make([]string, 0),
	}
}

// Config returns a copy of the active configuration
func (s *Session) Config() level.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetConfig replaces the configuration used by the next pass
func (s *Session) SetConfig(cfg level.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Current returns the last published level, or nil before the first pass
func (s *Session) Current() *level.Level {
	return s.current.Load()
}

// Busy reports whether a pass is running
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Passes returns the number of levels published so far
func (s *Session) Passes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passes
}

// Regenerate runs one pass on the calling goroutine. On failure the
// previously published level stays current.
func (s *Session) Regenerate() (*level.Level, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)
	return s.run()
}

// RegenerateAsync starts a pass in the background and returns false if one
// is already running. done, if not nil, is called from the worker goroutine.
func (s *Session) RegenerateAsync(done func(*level.Level, error)) bool {
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		lvl, err := s.run()
		s.busy.Store(false)
		if done != nil {
			done(lvl, err)
		}
	}()
	return true
}

func (s *Session) run() (*level.Level, error) {
	cfg := s.Config()
	lvl, err := level.Generate(s.gen, cfg)
	if err != nil {
		s.AddMessage(fmt.Sprintf(gotext.Get("GENERATION_FAILED"), err))
		return nil, err
	}

	s.current.Store(lvl)

	s.mu.Lock()
	s.passes++
	s.mu.Unlock()

	s.AddMessage(fmt.Sprintf(gotext.Get("GENERATED_CAVE"), lvl.Seed, lvl.Rooms.Len(), len(lvl.Passages)))
	return lvl, nil
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)

	// Keep only the last maxMessages
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// Messages returns a copy of the message log, oldest first
func (s *Session) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.mu.Lock()
	s.messages = make([]string, 0)
	s.mu.Unlock()
}
