package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bingrid.log")
	log, closer, err := New(path, true)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("path", "/tmp/x.bin").Debug("opened file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "opened file")
	assert.Contains(t, string(data), "path=/tmp/x.bin")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closer, err := New("", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.NoError(t, closer.Close())
}
