package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/level"
)

// SaveScreenshotHTML saves the carved map as a timestamped HTML file and
// returns its name
func SaveScreenshotHTML(lvl *level.Level, messages []string) (string, error) {
	if lvl == nil {
		return "", ErrNoLevel
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTML(f, lvl, messages); err != nil {
		return filename, err
	}
	return filename, nil
}

// WriteHTML writes the bordered map with room and passage overlays as a
// standalone HTML page
func WriteHTML(w io.Writer, lvl *level.Level, messages []string) error {
	if lvl == nil {
		return ErrNoLevel
	}

	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>cavegen - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
        .wall { color: #666; }
        .floor { color: #0f0f1a; }
        .main { color: #00aa00; }
        .passage { color: #ffc864; font-weight: bold; }
        .stats { margin-top: 10px; color: #888; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">Seed %s</div>`+"\n", html.EscapeString(lvl.Seed))

	b.WriteString(`    <div class="map-container">` + "\n")

	g := lvl.Bordered
	shift := world.Coord{X: lvl.Config.BorderSize, Y: lvl.Config.BorderSize}
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

	for y := g.Height() - 1; y >= 0; y-- {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			icon, class := tileHTMLInfo(g.At(c), c, main, ends)
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(`    </div>` + "\n")

	m := lvl.Mesh
	fmt.Fprintf(&b, `    <div class="stats">Rooms: %d, passages: %d, vertices: %d, triangles: %d, outlines: %d</div>`+"\n",
		lvl.Rooms.Len(), len(lvl.Passages), len(m.Vertices), m.TriangleCount(), len(m.Outlines))

	if len(messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range messages {
			// Strip ANSI codes for HTML output
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(stripANSI(msg)))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, b.String())
	return err
}

// tileHTMLInfo returns the icon and CSS class for a tile
func tileHTMLInfo(tile world.Tile, c world.Coord, main, ends map[world.Coord]bool) (string, string) {
	switch {
	case tile == world.Wall:
		return "█", "wall"
	case ends[c]:
		return "◆", "passage"
	case main[c]:
		return "·", "main"
	default:
		return " ", "floor"
	}
}

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
