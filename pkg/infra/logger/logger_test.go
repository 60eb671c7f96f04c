package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("nonsense"))

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, parseLevel("warn"))
}

func TestNewLogger_StdoutOnly(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger, closeFn := NewLogger(Options{Level: "error"})
	defer closeFn()

	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestAsyncFileWriter_CloseFlushesPendingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.log")
	w, err := NewAsyncFileWriter(path, 1024)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		n, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	}
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "line\n"))
	assert.Zero(t, w.Dropped())
}
