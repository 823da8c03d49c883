package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"bingrid/internal/datatype"
	"bingrid/internal/grid"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Number of trailing path components shown in the title.
const titleComponents = 3

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeView:
		if m.buf != nil {
			return m.renderViewer()
		}
	}
	return m.renderBrowser()
}

func (m *Model) fit(line string) string {
	return ansi.Truncate(line, m.width, "…")
}

// shortPath keeps the last n components of path.
func shortPath(path string, n int) string {
	parts := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
	if len(parts) <= n {
		return path
	}
	return "…/" + strings.Join(parts[len(parts)-n:], "/")
}

func (m *Model) renderViewer() string {
	var b strings.Builder

	title := fmt.Sprintf(" %s ", shortPath(m.buf.Filename(), titleComponents))
	size := humanize.IBytes(uint64(m.buf.Size()))
	b.WriteString(m.fit(m.styles.Title.Render(title) + " " + m.styles.Status.Render(size)))
	b.WriteString("\n")
	b.WriteString(m.fit(m.renderControls()))
	b.WriteString("\n")

	area := m.gridArea()
	if area.Height > 0 {
		placements := grid.Render(area, m.buf.Data(), m.opts, m.vp)
		c := grid.NewCanvas(area.Width, area.Height)
		c.Paint(placements)
		b.WriteString(c.Render(m.gridStyles, lipgloss.NewStyle()))
		b.WriteString("\n")
	}

	b.WriteString(m.fit(m.renderViewerStatus()))
	b.WriteString("\n")
	b.WriteString(m.fit(m.renderViewerLegend()))
	return b.String()
}

func (m *Model) button(label string, active bool) string {
	if active {
		return m.styles.ActiveButton.Render(" " + label + " ")
	}
	return m.styles.InactiveButton.Render(" " + label + " ")
}

func (m *Model) renderControls() string {
	var types []string
	for _, dt := range datatype.All {
		types = append(types, m.button(dt.String(), dt == m.opts.Type))
	}

	bases := []string{
		m.button("Dec", m.opts.Base == datatype.Decimal),
		m.button("Hex", m.opts.Base == datatype.Hexadecimal),
	}
	endian := []string{
		m.button("LE", m.opts.Endian == datatype.Little),
		m.button("BE", m.opts.Endian == datatype.Big),
	}

	cols := "cols: auto"
	if fixed := m.vp.FixedCols(); fixed > 0 {
		cols = fmt.Sprintf("cols: %d", fixed)
	}

	return strings.Join([]string{
		strings.Join(types, ""),
		strings.Join(bases, ""),
		strings.Join(endian, ""),
		m.styles.Status.Render(cols),
		m.styles.Disabled.Render("[search]"),
	}, "  ")
}

func (m *Model) renderViewerStatus() string {
	if _, idle := m.chord.(chordNormal); !idle {
		return m.styles.LegendHighlight.Render(chordPrompt(m.chord))
	}
	if m.statusMsg != "" {
		return m.styles.Status.Render(m.statusMsg)
	}
	if m.changed {
		return m.styles.Warning.Render("File changed on disk, press r to reload")
	}

	rows := m.vp.TotalRows()
	row := 0
	if rows > 0 {
		row = m.vp.RowOffset() + 1
	}
	status := fmt.Sprintf("row %d/%d", row, rows)
	if m.vp.FixedCols() > 0 {
		status += fmt.Sprintf("  col %d/%d", m.vp.ColOffset()+1, m.vp.FixedCols())
	}
	return m.styles.Status.Render(status)
}

func (m *Model) renderViewerLegend() string {
	return m.help.View(m.viewKeys)
}

func (m *Model) renderBrowser() string {
	var b strings.Builder

	title := " " + m.browser.Path() + " "
	if m.browser.ShowHidden() {
		title += "(all) "
	}
	b.WriteString(m.fit(m.styles.Title.Render(title)))
	b.WriteString("\n\n")

	visibleItems := max(m.height-headerLines-footerLines, 1)
	startIdx := 0
	if m.browser.Index() >= visibleItems {
		startIdx = m.browser.Index() - visibleItems + 1
	}

	entries := m.browser.Entries()
	lines := 0
	for i := startIdx; i < len(entries) && i < startIdx+visibleItems; i++ {
		e := entries[i]
		prefix := "  "
		if i == m.browser.Index() {
			prefix = "> "
		}

		name := e.Name
		style := m.styles.File
		if e.Dir {
			name += "/"
			style = m.styles.Directory
		}
		if i == m.browser.Index() {
			style = style.Inherit(m.styles.Selected)
		}

		line := prefix + style.Render(name)
		if label := e.SizeLabel(); label != "" {
			line += "  " + m.styles.Status.Render(label)
		}
		b.WriteString(m.fit(line))
		b.WriteString("\n")
		lines++
	}
	if len(entries) == 0 {
		b.WriteString("  (empty)\n")
		lines++
	}
	for ; lines < visibleItems; lines++ {
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString(m.fit(m.styles.Warning.Render(m.statusMsg)))
	}
	b.WriteString("\n")
	b.WriteString(m.fit(m.help.View(m.browseKeys)))
	return b.String()
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HelpTitle.Render("HELP - bingrid"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.HelpTitle.Render("Viewer"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.viewKeys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(m.styles.HelpTitle.Render("Data type"))
	b.WriteString("\n")
	b.WriteString("  t u 1..4   U8 U16 U32 U64\n")
	b.WriteString("  t i 1..4   I8 I16 I32 I64\n")
	b.WriteString("  t f 1..2   F32 F64\n\n")

	b.WriteString(m.styles.HelpTitle.Render("Files"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.browseKeys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString("Press ESC or ? to close this help screen.\n")
	return b.String()
}
