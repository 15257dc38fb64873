// Package logging points the standard logger at a rotating file. A full
// screen program owns stdout, so nothing may be logged there
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile is used when no path is configured
const DefaultFile = "combobox.log"

// EnvFile overrides the log path when set
const EnvFile = "COMBOBOX_LOG"

// Setup sends the standard logger to a rotating file at path and returns a
// closer that restores stderr. An empty path falls back to $COMBOBOX_LOG,
// then DefaultFile. "-" discards all output
func Setup(path string) io.Closer {
	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path == "" {
		path = DefaultFile
	}
	if path == "-" {
		log.SetOutput(io.Discard)
		return closerFunc(func() error {
			log.SetOutput(os.Stderr)
			return nil
		})
	}

	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return closerFunc(func() error {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
		return logFile.Close()
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
