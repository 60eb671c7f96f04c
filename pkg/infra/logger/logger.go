package logger

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logsDir = "logs"

type Options struct {
	// Level is a logrus level name; LOG_LEVEL overrides it when set
	Level string
	// File is the log file path inside logs/, empty disables file output
	File string
}

// NewLogger builds the JSON logger shared by every component. The returned
// function flushes and closes the log file.
func NewLogger(opts Options) (*logrus.Logger, func()) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	if opts.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() {}
	}

	logFile := filepath.Clean(opts.File)
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		log.Fatalf("Invalid log file path %q: must be in %s directory", opts.File, logsDir)
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		log.Fatalf("Failed to initialize async log writer: %v", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook())

	return logger, asyncWriter.Close
}

func parseLevel(level string) logrus.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
