// Package tlogger is the shared keyvalue logger for all build techs.
package tlogger

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Log is the default logger for apps
var Log log.Logger

var hlog log.Logger

func init() {
	Log = log.NewLogfmtLogger(os.Stdout)
	hlog = log.With(Log, "ts", log.DefaultTimestampUTC, "caller", log.Caller(6))
	Log = log.With(Log, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))

	ApplyLogLevel("info")
}

// ApplyLogLevel applies the minimum logging level. Any of debug, info,
// warn, error, all.
func ApplyLogLevel(lvl string) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	case "all":
		opt = level.AllowAll()
	default:
		opt = level.AllowInfo()
	}
	Log = level.NewFilter(Log, opt)
	hlog = level.NewFilter(hlog, opt)
}

// Debug add a log entry w/ Debug level
func Debug(keyvals ...interface{}) {
	level.Debug(hlog).Log(keyvals...)
}

// Info add a log entry w/ Info level
func Info(keyvals ...interface{}) {
	level.Info(hlog).Log(keyvals...)
}

// Warn add a log entry w/ Warn level
func Warn(keyvals ...interface{}) {
	level.Warn(hlog).Log(keyvals...)
}

// Error add a log entry w/ Error level
func Error(keyvals ...interface{}) {
	level.Error(hlog).Log(keyvals...)
}

// Fatal add a log entry w/ Error level and exits
func Fatal(keyvals ...interface{}) {
	level.Error(hlog).Log(keyvals...)
	os.Exit(1)
}

// FatalIf prints a fatal Error level and exits if err != nil
func FatalIf(err error) {
	if err == nil {
		return
	}
	level.Error(hlog).Log("err", err)
	os.Exit(1)
}
