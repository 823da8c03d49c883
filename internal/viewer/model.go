package viewer

import (
	"fmt"
	"os"
	"path/filepath"

	"bingrid/internal/browser"
	"bingrid/internal/buffer"
	"bingrid/internal/config"
	"bingrid/internal/datatype"
	"bingrid/internal/grid"
	"bingrid/internal/layout"
	"bingrid/internal/logging"
	"bingrid/internal/viewport"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeView
	ModeHelp
)

// Rows taken by the title and control lines above the grid and the status
// and legend lines below it.
const (
	headerLines = 2
	footerLines = 2
)

// Pinned column counts stay below this.
const maxFixedCols = 1 << 12

type Options struct {
	Config *config.Config
	Logger *logrus.Logger
	// Path is a file to open or a directory to browse; empty means the
	// working directory.
	Path    string
	Grid    grid.Options
	Columns int
}

type Model struct {
	cfg    *config.Config
	styles *config.Styles
	log    *logrus.Logger

	viewKeys   viewKeyMap
	browseKeys browseKeyMap
	help       help.Model

	mode     Mode
	prevMode Mode
	width    int
	height   int

	browser *browser.Browser

	buf     *buffer.Buffer
	vp      *viewport.State
	opts    grid.Options
	chord   chordState
	watcher *fileWatcher
	watchID int
	changed bool

	gridStyles map[grid.Kind]lipgloss.Style

	statusMsg string
}

func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	styles := config.NewStyles(&cfg.Theme)
	m := &Model{
		cfg:        cfg,
		styles:     styles,
		log:        log,
		viewKeys:   defaultViewKeys(),
		browseKeys: defaultBrowseKeys(),
		help:       help.New(),
		mode:       ModeBrowse,
		vp:         viewport.New(),
		opts:       opts.Grid,
		chord:      chordNormal{},
		gridStyles: map[grid.Kind]lipgloss.Style{
			grid.KindHeader:  styles.Header,
			grid.KindAddress: styles.Address,
			grid.KindValue:   styles.Value,
			grid.KindBorder:  styles.Border,
		},
	}
	m.vp.SetFixedCols(min(opts.Columns, maxFixedCols))

	dir, file := opts.Path, ""
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", dir, err)
		}
		if !info.IsDir() {
			dir, file = filepath.Dir(opts.Path), opts.Path
		}
	}

	b, err := browser.New(dir, cfg.Browser.ShowHidden, cfg.Browser.Ignore)
	if err != nil {
		return nil, err
	}
	m.browser = b
	if err := b.Load(); err != nil {
		m.log.WithError(err).WithField("path", dir).Warn("listing directory")
		m.statusMsg = fmt.Sprintf("Error: %v", err)
	}

	if file != "" {
		if err := m.openFile(file); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
	}

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.watchCmd()
}

// Close releases the file watcher.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}

func (m *Model) logFields() logrus.Fields {
	f := logrus.Fields{
		"type":   m.opts.Type.String(),
		"base":   m.opts.Base.String(),
		"endian": m.opts.Endian.String(),
	}
	if m.buf != nil {
		f["path"] = m.buf.Filename()
	}
	return f
}

func (m *Model) openFile(path string) error {
	buf, err := buffer.Open(path)
	if err != nil {
		m.log.WithError(err).WithField("path", path).Warn("open failed")
		return err
	}

	m.Close()
	m.buf = buf
	m.vp.Reset()
	m.chord = chordNormal{}
	m.setChanged(false)
	m.mode = ModeView
	m.log.WithFields(m.logFields()).WithField("size", buf.Size()).Info("opened file")

	m.watchID++
	w, err := newFileWatcher(buf.Filename(), m.watchID)
	if err != nil {
		m.log.WithError(err).Warn("file watch unavailable")
		return nil
	}
	m.watcher = w
	return nil
}

// closeFile ends the view session and drops the buffer.
func (m *Model) closeFile() {
	if m.buf != nil {
		m.log.WithField("path", m.buf.Filename()).Debug("closed file")
	}
	m.Close()
	m.buf = nil
	m.vp.Reset()
	m.chord = chordNormal{}
	m.setChanged(false)
	m.mode = ModeBrowse
}

func (m *Model) reload() {
	if m.buf == nil {
		return
	}
	fresh, err := m.buf.Reload()
	if err != nil {
		m.log.WithError(err).WithField("path", m.buf.Filename()).Warn("reload failed")
		m.statusMsg = fmt.Sprintf("Error reloading: %v", err)
		return
	}
	m.buf = fresh
	m.vp.Reset()
	m.setChanged(false)
	m.log.WithFields(m.logFields()).Info("reloaded file")
	m.statusMsg = "Reloaded"
}

func (m *Model) setChanged(changed bool) {
	m.changed = changed
	m.viewKeys.Reload.SetEnabled(changed)
}

func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.next()
}

func (m *Model) gridArea() layout.Rect {
	return layout.Rect{
		Width:  m.width,
		Height: max(m.height-headerLines-footerLines, 0),
	}
}

// remeasure re-runs the layout for the current geometry so that the
// viewport offsets are clamped right after a type, base or column change.
func (m *Model) remeasure() {
	if m.buf == nil || m.width == 0 {
		return
	}
	grid.Render(m.gridArea(), m.buf.Data(), m.opts, m.vp)
}

func (m *Model) setType(dt datatype.DataType) {
	m.opts.Type = dt
	m.remeasure()
	m.log.WithFields(m.logFields()).Debug("data type changed")
}

func (m *Model) setBase(b datatype.DisplayBase) {
	m.opts.Base = b
	m.remeasure()
	m.log.WithFields(m.logFields()).Debug("display base changed")
}

func (m *Model) setEndian(e datatype.Endianness) {
	m.opts.Endian = e
	m.log.WithFields(m.logFields()).Debug("endianness changed")
}

func (m *Model) pinColumns(n int) {
	n = min(max(n, 0), maxFixedCols)
	m.vp.SetFixedCols(n)
	m.remeasure()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.remeasure()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileChangedMsg:
		if m.watcher == nil || msg.gen != m.watcher.gen || m.buf == nil {
			return m, nil
		}
		changed, err := m.buf.HasChangedOnDisk()
		if err != nil {
			m.log.WithError(err).Warn("checking file on disk")
		} else if changed && !m.changed {
			m.setChanged(true)
			m.log.WithField("path", m.buf.Filename()).Info("file changed on disk")
		}
		return m, m.watchCmd()

	case watchErrMsg:
		if m.watcher == nil || msg.gen != m.watcher.gen {
			return m, nil
		}
		m.log.WithError(msg.err).Warn("file watch")
		return m, m.watchCmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear status message on any key
	m.statusMsg = ""

	switch m.mode {
	case ModeHelp:
		return m.handleHelpKey(msg)
	case ModeView:
		return m.handleViewKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "?", "esc", "q":
		m.mode = m.prevMode
	}
	return m, nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.browseKeys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.Up):
		m.browser.MoveUp()
	case key.Matches(msg, k.Down):
		m.browser.MoveDown()
	case key.Matches(msg, k.Top):
		m.browser.Top()
	case key.Matches(msg, k.Bottom):
		m.browser.Bottom()
	case key.Matches(msg, k.Parent):
		if err := m.browser.Parent(); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
		}
	case key.Matches(msg, k.Hidden):
		if err := m.browser.ToggleHidden(); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
		}
	case key.Matches(msg, k.Open):
		path, err := m.browser.Enter()
		if err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if path == "" {
			return m, nil
		}
		if err := m.openFile(path); err != nil {
			m.statusMsg = fmt.Sprintf("Cannot open %s: %v", filepath.Base(path), err)
			return m, nil
		}
		m.remeasure()
		return m, m.watchCmd()
	case key.Matches(msg, k.Help):
		m.prevMode = m.mode
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.viewKeys
	if key.Matches(msg, k.Quit) {
		return m.quit()
	}

	if _, idle := m.chord.(chordNormal); !idle {
		next, dt, ok := stepChord(m.chord, msg.String())
		m.chord = next
		if ok {
			m.setType(dt)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Back):
		m.closeFile()
	case key.Matches(msg, k.Up):
		m.vp.MoveUp()
	case key.Matches(msg, k.Down):
		m.vp.MoveDown()
	case key.Matches(msg, k.Left):
		m.vp.MoveLeft()
	case key.Matches(msg, k.Right):
		m.vp.MoveRight()
	case key.Matches(msg, k.PageUp):
		m.vp.ScrollUp()
	case key.Matches(msg, k.PageDown):
		m.vp.ScrollDown()
	case key.Matches(msg, k.Top):
		m.vp.GotoTop()
	case key.Matches(msg, k.Bottom):
		m.vp.GotoBottom()
	case key.Matches(msg, k.RowStart):
		m.vp.GotoStart()
	case key.Matches(msg, k.RowEnd):
		m.vp.GotoEnd()
	case key.Matches(msg, k.CycleBase):
		m.setBase(m.opts.Base.Next())
	case key.Matches(msg, k.Decimal):
		m.setBase(datatype.Decimal)
	case key.Matches(msg, k.Hex):
		m.setBase(datatype.Hexadecimal)
	case key.Matches(msg, k.Endian):
		m.setEndian(m.opts.Endian.Next())
	case key.Matches(msg, k.Type):
		m.chord = chordAwaitCategory{}
	case key.Matches(msg, k.Wider):
		if fixed := m.vp.FixedCols(); fixed > 0 {
			m.pinColumns(fixed * 2)
		} else {
			m.pinColumns(max(m.vp.VisibleCols()*2, 1))
		}
	case key.Matches(msg, k.Narrower):
		if fixed := m.vp.FixedCols(); fixed > 0 {
			m.pinColumns(max(fixed/2, 1))
		} else {
			m.pinColumns(max(m.vp.VisibleCols()/2, 1))
		}
	case key.Matches(msg, k.AutoFit):
		m.pinColumns(0)
	case key.Matches(msg, k.Reload):
		m.reload()
	case key.Matches(msg, k.Help):
		m.prevMode = m.mode
		m.mode = ModeHelp
	}
	return m, nil
}
