package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/level"
	"cavegen/pkg/game/renderer"
	"cavegen/pkg/game/state"
)

// Icon constants for the cave preview
const (
	IconWall    = "██"
	IconFloor   = "  "
	IconMain    = "··"
	IconPassage = "◆◆"
	IconVoid    = "  "
)

// Lines needed outside the grid preview:
// header + blank (2), stats (2), actions (1), messages pane (7), prompt (1)
const ViewportTopMargin = 13

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// readKey is swapped out in tests
var readKey = input.ReadKey

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall        color.Style
	colorFloor       color.Style
	colorMain        color.Style
	colorPassage     color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp

	session *state.Session
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgDefault}
	t.colorMain = color.Style{color.FgGreen}
	t.colorPassage = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// Run shows the current level and blocks on single key commands until quit.
// Passes run on the calling goroutine; the terminal has nothing else to do.
func (t *TUIRenderer) Run(s *state.Session) error {
	t.session = s
	if s.Current() == nil {
		t.regenerate(s)
	}

	for {
		t.Clear()
		rows, cols := t.GetViewportSize()
		t.RenderFrame(s, rows, cols)

		k, err := readKey()
		if err != nil {
			return err
		}

		switch renderer.Apply(s, k) {
		case renderer.ActionQuit:
			fmt.Fprintln(t.out)
			fmt.Fprintln(t.out, gotext.Get("GOODBYE"))
			return nil
		case renderer.ActionRegenerate:
			t.regenerate(s)
		}
	}
}

// regenerate runs a blocking pass. A failed pass is already in the message
// log and leaves the previous level current, so only a refused pass needs
// reporting.
func (t *TUIRenderer) regenerate(s *state.Session) {
	if _, err := s.Regenerate(); errors.Is(err, state.ErrBusy) {
		s.AddMessage(gotext.Get("GENERATION_BUSY"))
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// GetViewportSize returns the grid rows and columns that fit the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()
	gridW, gridH := termWidth, termHeight
	if t.session != nil {
		if lvl := t.session.Current(); lvl != nil {
			gridW, gridH = lvl.Bordered.Width(), lvl.Bordered.Height()
		}
	}
	cols, rows = terminal.Viewport(termWidth, termHeight, gridW, gridH, ViewportTopMargin)
	return rows, cols
}

// RenderFrame renders the header, grid preview, stats, actions and messages
func (t *TUIRenderer) RenderFrame(s *state.Session, rows, cols int) {
	fmt.Fprint(t.out, t.colorAction.Sprintf("cavegen %s\n\n", renderer.Version))

	lvl := s.Current()
	if lvl == nil {
		fmt.Fprintln(t.out, t.colorDenied.Sprint(gotext.Get("NO_LEVEL")))
	} else {
		fmt.Fprint(t.out, t.renderGrid(lvl, rows, cols))
		t.printStats(lvl)
	}

	t.printPossibleActions()
	t.printMessagesPane(s.Messages())
	fmt.Fprint(t.out, "> ")
}

// tileIcon returns the styled icon for one bordered grid tile
func (t *TUIRenderer) tileIcon(tile world.Tile, c world.Coord, main, ends map[world.Coord]bool) string {
	switch {
	case tile == world.Wall:
		return t.colorWall.Sprint(IconWall)
	case ends[c]:
		return t.colorPassage.Sprint(IconPassage)
	case main[c]:
		return t.colorMain.Sprint(IconMain)
	default:
		return IconFloor
	}
}

// renderGrid returns the bordered grid, top row first, clipped to rows x cols
// from the top left corner.
func (t *TUIRenderer) renderGrid(lvl *level.Level, rows, cols int) string {
	g := lvl.Bordered
	border := lvl.Config.BorderSize

	// Overlays are in carved grid coordinates; shift them by the border.
	shift := world.Coord{X: border, Y: border}
	main := make(map[world.Coord]bool)
	if i := lvl.Rooms.Main(); i >= 0 {
		for _, c := range lvl.Rooms.Rooms[i].Tiles {
			main[c.Add(shift)] = true
		}
	}
	ends := make(map[world.Coord]bool)
	for _, p := range lvl.Passages {
		ends[p.From.Add(shift)] = true
		ends[p.To.Add(shift)] = true
	}

	var b strings.Builder
	top := g.Height() - 1
	for row := 0; row < rows; row++ {
		y := top - row
		for x := 0; x < cols; x++ {
			c := world.Coord{X: x, Y: y}
			if !g.InBounds(x, y) {
				b.WriteString(IconVoid)
				continue
			}
			b.WriteString(t.tileIcon(g.At(c), c, main, ends))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// printStats prints the seed line and the mesh line
func (t *TUIRenderer) printStats(lvl *level.Level) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.FormatText(gotext.Get("STATS_GRID"), lvl.Seed, lvl.Grid.Width(), lvl.Grid.Height(), lvl.Rooms.Len(), len(lvl.Passages)))
	fmt.Fprintln(t.out, t.FormatText(gotext.Get("STATS_MESH"), len(lvl.Mesh.Vertices), lvl.Mesh.TriangleCount(), len(lvl.Mesh.Outlines), lvl.Config.Saddle))
}

// actionOrder is the order commands appear in the action line
var actionOrder = []input.Key{
	input.KeyRegenerate,
	input.KeyToggleSaddle,
	input.KeyToggleRandomSeed,
	input.KeyDump,
	input.KeyScreenshot,
	input.KeyQuit,
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, t.FormatText("%s", actionLine(input.GetBindingsByKey())))
}

// actionLine lists each command with the terminal keys bound to it
func actionLine(bindings map[input.Key][]string) string {
	parts := make([]string, 0, len(actionOrder))
	for _, k := range actionOrder {
		codes := slices.DeleteFunc(slices.Clone(bindings[k]), func(c string) bool {
			return strings.HasPrefix(c, "mouse_")
		})
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("ACTION{%s} SUBTLE{%s}", k, strings.Join(codes, ",")))
	}
	return strings.Join(parts, "  ")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(messages []string) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
