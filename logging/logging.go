// Package logging owns the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

const prefix = "shadow-runner"

var (
	mu   sync.Mutex
	root = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	// Child loggers are copies, so level and output changes are fanned out.
	children = map[string]*log.Logger{}
)

// Logger returns the root logger.
func Logger() *log.Logger {
	return root
}

// For returns the logger for a subsystem, e.g. "level". Repeated calls return
// the same logger.
func For(subsystem string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := children[subsystem]; ok {
		return l
	}
	l := root.WithPrefix(prefix + "/" + subsystem)
	children[subsystem] = l
	return l
}

// SetDebug switches between debug and info output.
func SetDebug(debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	mu.Lock()
	defer mu.Unlock()
	root.SetLevel(level)
	for _, l := range children {
		l.SetLevel(level)
	}
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root.SetOutput(w)
	for _, l := range children {
		l.SetOutput(w)
	}
}
