package viewer

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileChangedMsg struct {
	gen int
}

type watchErrMsg struct {
	gen int
	err error
}

// fileWatcher reports changes to one file. It watches the parent
// directory so editors that save by rename are noticed too.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
	gen  int
}

func newFileWatcher(path string, gen int) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{w: w, path: filepath.Clean(path), gen: gen}, nil
}

// next waits for the following relevant event. The command returns nil
// once the watcher is closed.
func (fw *fileWatcher) next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-fw.w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != fw.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
					ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
					return fileChangedMsg{gen: fw.gen}
				}
			case err, ok := <-fw.w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{gen: fw.gen, err: err}
			}
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
