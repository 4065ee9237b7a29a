/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resplog/logger.go
*/

// Package resplog provides the leveled logger the parser and writer use
// for malformed-frame and downgrade diagnostics. It wraps the standard
// library log.Logger: one *log.Logger per level, a line prefix, no
// external deps.
package resplog

import (
	"io"
	"log"
	"os"
)

// Level selects which messages reach the underlying writer.
type Level int

const (
	LevelDebug Level = iota
	LevelWarn
	LevelError
	LevelSilent
)

// Logger is a small leveled logger. Its zero value is silent: every
// method is a no-op until a Logger is constructed with New, and a nil
// *Logger is likewise safe to call methods on. Parser and Writer fields
// of type *Logger can therefore be left unset in the common case.
type Logger struct {
	level       Level
	debugLogger *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a Logger writing to w at or above minLevel. Passing a nil
// w is equivalent to LevelSilent.
func New(w io.Writer, minLevel Level) *Logger {
	if w == nil {
		minLevel = LevelSilent
	}
	return &Logger{
		level:       minLevel,
		debugLogger: log.New(w, "[DEBUG] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "[WARN]  ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "[ERROR] ", log.Ldate|log.Ltime),
	}
}

// Default logs to stderr at LevelWarn.
func Default() *Logger {
	return New(os.Stderr, LevelWarn)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l == nil || l.debugLogger == nil || l.level > LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l == nil || l.warnLogger == nil || l.level > LevelWarn {
		return
	}
	l.warnLogger.Printf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l == nil || l.level > LevelError {
		return
	}
	l.errorLogger.Printf(format, v...)
}
