// Package log provides leveled, module-tagged logging for the CLI and
// web layers. Library packages return errors instead of logging.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects logger verbosity.
type Level logging.Level

// The levels accepted by SetLevel, most verbose first.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logger handed out to consumers.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger. All loggers share the process-wide sink
// and level configured through SetSink and SetLevel.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to the given writer and resets the
// level to Notice.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts verbosity for all loggers.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
