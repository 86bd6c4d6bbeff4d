package log

import (
	"fmt"
	"strings"
)

// LogLevel is the severity of a message. Messages below the level set by Init
// or SetLogLevel are dropped.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

func (lv LogLevel) String() string {
	switch lv {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(lv))
	}
}

// ParseLevel returns the level named by s, case insensitively.
func ParseLevel(s string) (LogLevel, error) {
	for lv := LevelDebug; lv <= LevelFatal; lv++ {
		if strings.EqualFold(s, lv.String()) {
			return lv, nil
		}
	}
	return LevelDebug, fmt.Errorf("log: unknown level %q", s)
}
