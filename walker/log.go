package walker

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/rail-walker/spline"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(spline.Logger())
}

// SetLogger installs the logger for the walker and spline packages; nil restores silence
func SetLogger(l *slog.Logger) {
	spline.SetLogger(l)
	loggerPtr.Store(spline.Logger())
}

// Logger returns the active package logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
