package viewer

import "github.com/charmbracelet/bubbles/key"

type viewKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	RowStart  key.Binding
	RowEnd    key.Binding
	CycleBase key.Binding
	Decimal   key.Binding
	Hex       key.Binding
	Endian    key.Binding
	Type      key.Binding
	Wider     key.Binding
	Narrower  key.Binding
	AutoFit   key.Binding
	Reload    key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultViewKeys() viewKeyMap {
	return viewKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup/^u", "half page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn/^d", "half page down")),
		Top:       key.NewBinding(key.WithKeys("g", "ctrl+home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "ctrl+end"), key.WithHelp("G", "bottom")),
		RowStart:  key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0/home", "first column")),
		RowEnd:    key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("$/end", "last column")),
		CycleBase: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle base")),
		Decimal:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "decimal")),
		Hex:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hexadecimal")),
		Endian:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "endianness")),
		Type:      key.NewBinding(key.WithKeys("t", "ctrl+t"), key.WithHelp("t", "data type")),
		Wider:     key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "pin more columns")),
		Narrower:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "pin fewer columns")),
		AutoFit:   key.NewBinding(key.WithKeys("="), key.WithHelp("=", "auto-fit columns")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"), key.WithDisabled()),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "files")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
	}
}

func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.CycleBase, k.Endian, k.PageDown, k.Reload, k.Help, k.Back, k.Quit}
}

func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.RowStart, k.RowEnd},
		{k.Type, k.CycleBase, k.Decimal, k.Hex, k.Endian},
		{k.Wider, k.Narrower, k.AutoFit, k.Reload},
		{k.Help, k.Back, k.Quit},
	}
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding
	Parent key.Binding
	Hidden key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Open:   key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Parent: key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("h", "parent")),
		Hidden: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "hidden files")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Parent, k.Hidden, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Parent, k.Hidden},
		{k.Help, k.Quit},
	}
}
