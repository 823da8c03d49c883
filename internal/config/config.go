package config

import (
	"errors"
	"os"
	"path/filepath"

	"bingrid/internal/datatype"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Background       string `toml:"background"`
	BorderColor      string `toml:"border_color"`
	Header           string `toml:"header"`
	Address          string `toml:"address"`
	Value            string `toml:"value"`
	Active           string `toml:"active"`
	Inactive         string `toml:"inactive"`
	LegendBackground string `toml:"legend_background"`
	LegendHighlight  string `toml:"legend_highlight"`
	Status           string `toml:"status"`
	Warning          string `toml:"warning"`
	Directory        string `toml:"directory"`
	File             string `toml:"file"`
	DisabledColor    string `toml:"disabled_color"`
}

type Viewer struct {
	DataType string `toml:"data_type"`
	Base     string `toml:"base"`
	Endian   string `toml:"endian"`
	Columns  int    `toml:"columns"`
}

type Browser struct {
	ShowHidden bool     `toml:"show_hidden"`
	Ignore     []string `toml:"ignore"`
}

type Config struct {
	Theme   Theme   `toml:"theme"`
	Viewer  Viewer  `toml:"viewer"`
	Browser Browser `toml:"browser"`
	LogFile string  `toml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Background:       "#000000",
			BorderColor:      "#00FFFF",
			Header:           "#5FFFFF",
			Address:          "#5FFFFF",
			Value:            "#FFFF00",
			Active:           "#00AA00",
			Inactive:         "#AAAA00",
			LegendBackground: "#0000FF",
			LegendHighlight:  "#FF0000",
			Status:           "#AAAAAA",
			Warning:          "#FF5F00",
			Directory:        "#5F87FF",
			File:             "#5FD75F",
			DisabledColor:    "#464646",
		},
		Viewer: Viewer{
			DataType: "u8",
			Base:     "dec",
			Endian:   "little",
		},
		Browser: Browser{
			Ignore: []string{"*.swp", "*~"},
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bingrid.toml"
	}
	return filepath.Join(home, ".config", "bingrid", "bingrid.toml")
}

// Load reads path, or the default config path when path is empty. A
// missing file is not an error. On a decode error the defaults are
// returned together with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Resolve parses the viewer defaults. Each unparsable field falls back to
// its zero value and contributes to the returned error.
func (v Viewer) Resolve() (datatype.DataType, datatype.DisplayBase, datatype.Endianness, error) {
	var errs []error

	dt, err := datatype.Parse(v.DataType)
	if err != nil {
		errs = append(errs, err)
	}
	base, err := datatype.ParseBase(v.Base)
	if err != nil {
		errs = append(errs, err)
	}
	endian, err := datatype.ParseEndianness(v.Endian)
	if err != nil {
		errs = append(errs, err)
	}

	return dt, base, endian, errors.Join(errs...)
}

type Styles struct {
	Background      lipgloss.Style
	Border          lipgloss.Style
	Header          lipgloss.Style
	Address         lipgloss.Style
	Value           lipgloss.Style
	Title           lipgloss.Style
	Box             lipgloss.Style
	DisabledBox     lipgloss.Style
	ActiveButton    lipgloss.Style
	InactiveButton  lipgloss.Style
	Legend          lipgloss.Style
	LegendHighlight lipgloss.Style
	Status          lipgloss.Style
	Warning         lipgloss.Style
	Directory       lipgloss.Style
	File            lipgloss.Style
	Selected        lipgloss.Style
	Disabled        lipgloss.Style
	HelpTitle       lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Background)),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BorderColor)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Header)).
			Bold(true),
		Address: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Address)).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Value)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF87")).
			Background(lipgloss.Color(theme.LegendBackground)).
			Bold(true).
			Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderColor)),
		DisabledBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.DisabledColor)),
		ActiveButton: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Active)).
			Foreground(lipgloss.Color("#000000")),
		InactiveButton: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Inactive)).
			Foreground(lipgloss.Color("#000000")),
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		LegendHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Status)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)).
			Bold(true),
		Directory: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Directory)),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.File)),
		Selected: lipgloss.NewStyle().
			Reverse(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisabledColor)),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),
	}
}
