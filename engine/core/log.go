package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logOnce sync.Once
	logger  *log.Logger
)

func getLogger() *log.Logger {
	logOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "lmgl",
		})
		logger.SetLevel(log.InfoLevel)
	})
	return logger
}

// SetLogLevel adjusts the engine log level; unknown names are ignored.
func SetLogLevel(level string) {
	if lvl, err := log.ParseLevel(level); err == nil {
		getLogger().SetLevel(lvl)
	}
}

func LogDebug(format string, args ...any) { getLogger().Debugf(format, args...) }
func LogInfo(format string, args ...any)  { getLogger().Infof(format, args...) }
func LogWarn(format string, args ...any)  { getLogger().Warnf(format, args...) }
func LogError(format string, args ...any) { getLogger().Errorf(format, args...) }
func LogFatal(format string, args ...any) { getLogger().Fatalf(format, args...) }
