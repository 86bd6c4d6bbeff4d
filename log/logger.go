package log

import (
	"fmt"
	"log"
	"os"
)

// calldepth skips the Logger method, the level gate and the exported wrapper
// so that file and line flags report the caller of the package.
const calldepth = 4

// Logger is implemented by the destinations of log messages.
type Logger interface {
	Log(lv LogLevel, args ...interface{})
	Logf(lv LogLevel, format string, args ...interface{})
	Close() error
}

// StdLogger writes to the output of the standard library logger, which is
// stderr unless changed.
type StdLogger struct {
}

func (l *StdLogger) Log(lv LogLevel, args ...interface{}) {
	_ = log.Output(calldepth, fmt.Sprintf("[%s]", lv)+fmt.Sprint(args...)+"\n")
}

func (l *StdLogger) Logf(lv LogLevel, format string, args ...interface{}) {
	_ = log.Output(calldepth, fmt.Sprintf("[%s]", lv)+fmt.Sprintf(format, args...)+"\n")
}

func (l *StdLogger) Close() error {
	return nil
}

// FileLogger writes to a file it owns.
type FileLogger struct {
	logger *log.Logger
	file   *os.File
}

// NewFileLogger creates or truncates filename and returns a logger writing to
// it, with each line prefixed by the date and time.
func NewFileLogger(filename string) (*FileLogger, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return &FileLogger{
		logger: log.New(file, "", log.Ldate|log.Ltime),
		file:   file,
	}, nil
}

func (l *FileLogger) Log(lv LogLevel, args ...interface{}) {
	_ = l.logger.Output(calldepth, fmt.Sprintf("[%s]", lv)+fmt.Sprint(args...)+"\n")
}

func (l *FileLogger) Logf(lv LogLevel, format string, args ...interface{}) {
	_ = l.logger.Output(calldepth, fmt.Sprintf("[%s]", lv)+fmt.Sprintf(format, args...)+"\n")
}

func (l *FileLogger) Close() error {
	return l.file.Close()
}
