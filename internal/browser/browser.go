package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
)

const ParentName = ".."

type Entry struct {
	Name string
	Dir  bool
	Size int64
}

// SizeLabel is the human readable size of a file, empty for directories.
func (e Entry) SizeLabel() string {
	if e.Dir {
		return ""
	}
	return humanize.IBytes(uint64(e.Size))
}

type Browser struct {
	path       string
	entries    []Entry
	index      int
	showHidden bool
	ignore     []glob.Glob
}

// New creates a browser rooted at dir. Ignore patterns are matched against
// entry names.
func New(dir string, showHidden bool, ignore []string) (*Browser, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	b := &Browser{path: abs, showHidden: showHidden}
	for _, p := range ignore {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", p, err)
		}
		b.ignore = append(b.ignore, g)
	}
	return b, nil
}

func (b *Browser) Path() string { return b.path }

func (b *Browser) Entries() []Entry { return b.entries }

func (b *Browser) Index() int { return b.index }

func (b *Browser) ShowHidden() bool { return b.showHidden }

func (b *Browser) atRoot() bool { return filepath.Dir(b.path) == b.path }

func (b *Browser) Selected() (Entry, bool) {
	if b.index < 0 || b.index >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[b.index], true
}

func (b *Browser) hidden(name string) bool {
	if !b.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range b.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Load lists the current directory: ".." first unless at the root, then
// directories, then files, each sorted by name. On error the listing is
// emptied.
func (b *Browser) Load() error {
	entries, err := os.ReadDir(b.path)
	if err != nil {
		b.entries = nil
		b.index = 0
		return err
	}

	var dirs, files []Entry
	for _, e := range entries {
		if b.hidden(e.Name()) {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, Entry{Name: e.Name(), Dir: true})
			continue
		}
		// Sockets, devices and the like cannot be viewed.
		if !e.Type().IsRegular() && e.Type()&os.ModeSymlink == 0 {
			continue
		}
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, Entry{Name: e.Name(), Size: size})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	b.entries = make([]Entry, 0, len(dirs)+len(files)+1)
	if !b.atRoot() {
		b.entries = append(b.entries, Entry{Name: ParentName, Dir: true})
	}
	b.entries = append(b.entries, dirs...)
	b.entries = append(b.entries, files...)

	if b.index >= len(b.entries) {
		b.index = max(len(b.entries)-1, 0)
	}
	return nil
}

func (b *Browser) MoveUp() {
	if b.index > 0 {
		b.index--
	}
}

func (b *Browser) MoveDown() {
	if b.index < len(b.entries)-1 {
		b.index++
	}
}

func (b *Browser) Top() { b.index = 0 }

func (b *Browser) Bottom() { b.index = max(len(b.entries)-1, 0) }

// Parent moves to the parent directory and selects the directory just
// left.
func (b *Browser) Parent() error {
	if b.atRoot() {
		return nil
	}
	child := filepath.Base(b.path)
	b.path = filepath.Dir(b.path)
	b.index = 0
	if err := b.Load(); err != nil {
		return err
	}
	for i, e := range b.entries {
		if e.Dir && e.Name == child {
			b.index = i
			break
		}
	}
	return nil
}

// Enter opens the selected entry. For a directory the browser descends and
// returns an empty path; for a file it returns the file path.
func (b *Browser) Enter() (string, error) {
	e, ok := b.Selected()
	if !ok {
		return "", nil
	}
	if e.Name == ParentName {
		return "", b.Parent()
	}

	path := filepath.Join(b.path, e.Name)
	if !e.Dir {
		// A symlink may still point at a directory.
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			return path, nil
		}
	}

	prev := b.path
	b.path = path
	b.index = 0
	if err := b.Load(); err != nil {
		b.path = prev
		b.Load()
		return "", err
	}
	return "", nil
}

func (b *Browser) ToggleHidden() error {
	b.showHidden = !b.showHidden
	return b.Load()
}
