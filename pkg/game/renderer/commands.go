package renderer

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/mesh"
	"cavegen/pkg/game/state"
)

// Action tells a renderer loop what to do after a command
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionQuit
)

// dumpLevel and saveScreenshot are swapped out in tests
var (
	dumpLevel      = devtools.DumpLevelToFile
	saveScreenshot = devtools.SaveScreenshotHTML
)

// Apply runs the configuration side of a command against s and returns the
// follow-up the renderer should perform. Generation itself is left to the
// renderer so each backend can choose between blocking and background passes.
func Apply(s *state.Session, k input.Key) Action {
	switch k {
	case input.KeyRegenerate:
		return ActionRegenerate

	case input.KeyToggleSaddle:
		cfg := s.Config()
		if cfg.Saddle == mesh.SaddleSplit {
			cfg.Saddle = mesh.SaddleBridge
		} else {
			cfg.Saddle = mesh.SaddleSplit
		}
		s.SetConfig(cfg)
		s.AddMessage(fmt.Sprintf(gotext.Get("SADDLE_MODE"), cfg.Saddle))
		return ActionRegenerate

	case input.KeyToggleRandomSeed:
		cfg := s.Config()
		cfg.UseRandomSeed = !cfg.UseRandomSeed
		s.SetConfig(cfg)
		if cfg.UseRandomSeed {
			s.AddMessage(gotext.Get("RANDOM_SEED_ON"))
		} else {
			s.AddMessage(gotext.Get("RANDOM_SEED_OFF"))
		}

	case input.KeyDump:
		path, err := dumpLevel(s.Current())
		if err != nil {
			s.AddMessage(fmt.Sprintf(gotext.Get("MAP_DUMP_FAILED"), err))
		} else {
			s.AddMessage(fmt.Sprintf(gotext.Get("MAP_DUMPED"), path))
		}

	case input.KeyScreenshot:
		name, err := saveScreenshot(s.Current(), s.Messages())
		if err != nil {
			s.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_FAILED"), err))
		} else {
			s.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_SAVED"), name))
		}

	case input.KeyQuit:
		return ActionQuit
	}
	return ActionNone
}
