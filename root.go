package main

import (
	"errors"
	"fmt"
	"os"

	"bingrid/internal/config"
	"bingrid/internal/grid"
	"bingrid/internal/logging"
	"bingrid/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configFile string
	logFile    string
	debug      bool
	dataType   string
	base       string
	endian     string
	columns    int
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:     "bingrid [path]",
		Short:   "Inspect binary files as a grid of typed values",
		Long:    "bingrid shows a file as rows of integers or floats, with a chosen width, base and byte order.\nWith a directory, or no argument, it starts in the file browser.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "config file (default is $HOME/.config/bingrid/bingrid.toml)")
	flags.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&f.debug, "debug", false, "log at debug level")
	flags.StringVarP(&f.dataType, "type", "t", "", "data type: u8 i8 u16 i16 u32 i32 u64 i64 f32 f64")
	flags.StringVarP(&f.base, "base", "b", "", "display base: dec or hex")
	flags.StringVarP(&f.endian, "endian", "e", "", "byte order: little or big")
	flags.IntVarP(&f.columns, "columns", "c", 0, "pin the number of columns per row (0 fits the terminal)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// applyFlags overrides the loaded config with the flags that were set.
func applyFlags(cmd *cobra.Command, f rootFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Viewer.DataType = f.dataType
	}
	if flags.Changed("base") {
		cfg.Viewer.Base = f.base
	}
	if flags.Changed("endian") {
		cfg.Viewer.Endian = f.endian
	}
	if flags.Changed("columns") {
		cfg.Viewer.Columns = f.columns
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
}

func run(cmd *cobra.Command, f rootFlags, path string) error {
	cfg, cfgErr := config.Load(f.configFile)
	applyFlags(cmd, f, cfg)

	dt, base, endian, err := cfg.Viewer.Resolve()
	if err != nil {
		return err
	}
	if cfg.Viewer.Columns < 0 {
		return fmt.Errorf("invalid column count %d", cfg.Viewer.Columns)
	}

	log, closer, err := logging.New(cfg.LogFile, f.debug)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	if cfgErr != nil {
		log.WithError(cfgErr).Warn("config not loaded, using defaults")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	model, err := viewer.NewModel(viewer.Options{
		Config:  cfg,
		Logger:  log,
		Path:    path,
		Grid:    grid.Options{Type: dt, Base: base, Endian: endian},
		Columns: cfg.Viewer.Columns,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	log.WithFields(logrus.Fields{"path": path, "version": version}).Info("starting")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigPath()
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
