package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"bingrid/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--type", "f64", "-b", "hex", "--columns", "16"}))

	var f rootFlags
	f.dataType, _ = cmd.Flags().GetString("type")
	f.base, _ = cmd.Flags().GetString("base")
	f.columns, _ = cmd.Flags().GetInt("columns")

	cfg := config.DefaultConfig()
	applyFlags(cmd, f, cfg)

	assert.Equal(t, "f64", cfg.Viewer.DataType)
	assert.Equal(t, "hex", cfg.Viewer.Base)
	assert.Equal(t, "little", cfg.Viewer.Endian)
	assert.Equal(t, 16, cfg.Viewer.Columns)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "bingrid.toml")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cmd = NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "init", path})
	assert.Error(t, cmd.Execute())
}
