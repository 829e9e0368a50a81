// Package logfile appends timestamped leveled entries to the
// agent log file, rotating it once at startup when oversized.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Settings struct {
	// Path is the log file path, required.
	Path string
	// MaxSize is the size in bytes above which the log file
	// is rotated at startup. It defaults to 1 MiB.
	MaxSize int64
	// TimeNow can be set for tests and defaults to time.Now.
	TimeNow func() time.Time
}

func (s *Settings) setDefaults() {
	const defaultMaxSize = 1048576
	if s.MaxSize == 0 {
		s.MaxSize = defaultMaxSize
	}
	if s.TimeNow == nil {
		s.TimeNow = time.Now
	}
}

type Logger struct {
	file    *os.File
	timeNow func() time.Time
	mutex   sync.Mutex
}

// New creates the parent directory of the log file if needed,
// rotates the log file to its .old sibling if it exceeds the
// maximum size, and opens the log file for appending. A rotation
// notice is the first entry written to the fresh file.
func New(settings Settings) (logger *Logger, err error) {
	settings.setDefaults()

	parentDir := filepath.Dir(settings.Path)
	err = os.MkdirAll(parentDir, 0o700)
	if err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	rotated, err := rotate(settings.Path, settings.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("rotating log file: %w", err)
	}

	file, err := os.OpenFile(settings.Path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger = &Logger{
		file:    file,
		timeNow: settings.TimeNow,
	}
	if rotated {
		logger.Info("Log file rotated due to size limit")
	}
	return logger, nil
}

// rotate renames path to path+".old" if the file at path is larger
// than maxSize, discarding any previous .old file. It reports
// whether a rotation happened.
func rotate(path string, maxSize int64) (rotated bool, err error) {
	stat, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, err
	case stat.Size() <= maxSize:
		return false, nil
	}

	err = os.Rename(path, path+".old")
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *Logger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.file.Close()
}

func (l *Logger) Debug(s string) { l.write("DEBUG", s) }
func (l *Logger) Info(s string)  { l.write("INFO", s) }
func (l *Logger) Warn(s string)  { l.write("WARN", s) }
func (l *Logger) Error(s string) { l.write("ERROR", s) }

func (l *Logger) write(level, message string) {
	timestamp := l.timeNow().Format("2006-01-02 15:04:05")
	line := "[" + timestamp + "] [" + level + "] " + message + "\n"
	l.mutex.Lock()
	defer l.mutex.Unlock()
	// a failed write cannot be reported anywhere better than here
	_, _ = l.file.WriteString(line)
}
