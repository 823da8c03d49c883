package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r    rune
	kind Kind
	used bool
	cont bool // right half of a wide rune
}

// Canvas is a fixed size cell buffer that placements are painted into
// before being flushed as terminal lines.
type Canvas struct {
	width, height int
	cells         []cell
}

func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Paint writes every placement, centering the ones marked Centered in
// their region. Text is clipped to both the region and the canvas.
func (c *Canvas) Paint(placements []Placement) {
	for _, p := range placements {
		c.put(p)
	}
}

func (c *Canvas) put(p Placement) {
	r := p.Rect
	if r.Y < 0 || r.Y >= c.height || r.Width <= 0 {
		return
	}

	x := r.X
	if p.Centered {
		if pad := (r.Width - runewidth.StringWidth(p.Text)) / 2; pad > 0 {
			x += pad
		}
	}
	right := min(r.X+r.Width, c.width)

	for _, ch := range p.Text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > right {
			break
		}
		if x >= 0 {
			i := r.Y*c.width + x
			c.cells[i] = cell{r: ch, kind: p.Kind, used: true}
			if w == 2 {
				c.cells[i+1] = cell{kind: p.Kind, used: true, cont: true}
			}
		}
		x += w
	}
}

// String returns the canvas as plain text, one line per row.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range lines {
		var b strings.Builder
		for _, cl := range c.row(y) {
			switch {
			case cl.cont:
			case cl.used:
				b.WriteRune(cl.r)
			default:
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) row(y int) []cell {
	return c.cells[y*c.width : (y+1)*c.width]
}

// Render flushes the canvas with a style per cell kind. Unpainted cells
// use base.
func (c *Canvas) Render(styles map[Kind]lipgloss.Style, base lipgloss.Style) string {
	lines := make([]string, c.height)
	for y := range lines {
		var (
			b       strings.Builder
			run     strings.Builder
			runKind = Kind(-1)
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style, ok := styles[runKind]
			if !ok {
				style = base
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for _, cl := range c.row(y) {
			if cl.cont {
				continue
			}
			k := Kind(-1)
			if cl.used {
				k = cl.kind
			}
			if k != runKind {
				flush()
				runKind = k
			}
			if cl.used {
				run.WriteRune(cl.r)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
