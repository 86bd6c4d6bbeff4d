// Package log is a leveled logger for the command line tools of this module.
//
// Messages go to stderr until Init selects a file. Library packages do not
// log; they return errors which their callers report here.
package log

import "os"

var gLogger Logger = &StdLogger{}
var gLogLevel LogLevel = LevelInfo

// Init selects where messages are written and the minimum level of messages
// that are kept. An empty filename selects stderr.
func Init(filename string, level LogLevel) error {
	var l Logger = &StdLogger{}
	if filename != "" {
		fl, err := NewFileLogger(filename)
		if err != nil {
			return err
		}
		l = fl
	}
	_ = gLogger.Close()
	gLogger = l
	gLogLevel = level
	return nil
}

// Close closes the current destination and sends subsequent messages to
// stderr.
func Close() error {
	err := gLogger.Close()
	gLogger = &StdLogger{}
	return err
}

// SetLogLevel changes the minimum level of messages that are kept.
func SetLogLevel(level LogLevel) {
	gLogLevel = level
}

// Debug, Info, Warning and Error log a message at their level, formatting
// args like fmt.Sprint. The variants suffixed by f format like fmt.Sprintf.
func Debug(args ...interface{})                 { output(LevelDebug, args) }
func Debugf(format string, args ...interface{}) { outputf(LevelDebug, format, args) }

func Info(args ...interface{})                 { output(LevelInfo, args) }
func Infof(format string, args ...interface{}) { outputf(LevelInfo, format, args) }

func Warning(args ...interface{})                 { output(LevelWarning, args) }
func Warningf(format string, args ...interface{}) { outputf(LevelWarning, format, args) }

func Error(args ...interface{})                 { output(LevelError, args) }
func Errorf(format string, args ...interface{}) { outputf(LevelError, format, args) }

func output(lv LogLevel, args []interface{}) {
	if lv >= gLogLevel {
		gLogger.Log(lv, args...)
	}
}

func outputf(lv LogLevel, format string, args []interface{}) {
	if lv >= gLogLevel {
		gLogger.Logf(lv, format, args...)
	}
}

// Fatal logs a message regardless of the level, closes the destination, and
// exits the process with status 1.
func Fatal(args ...interface{}) {
	output(LevelFatal, args)
	_ = gLogger.Close()
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	outputf(LevelFatal, format, args)
	_ = gLogger.Close()
	os.Exit(1)
}
