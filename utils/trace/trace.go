package trace

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync/atomic"
)

// EnvVar is the environment variable read by ReadEnv.
const EnvVar = "FILEREADER_TRACE"

var (
	// logger is the logger to use for tracing.
	logger atomic.Pointer[log.Logger]

	// current is the targets that are enabled for tracing.
	current atomic.Int32
)

func init() {
	logger.Store(log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds|log.Lshortfile))
}

// Target is a tracing target.
type Target int

const (
	// General traces opening, closing and rewinding of files.
	General Target = 1 << iota

	// Refill traces every refill of a reader's buffer.
	Refill
)

// SetTarget sets the tracing targets.
func SetTarget(target Target) {
	current.Store(int32(target))
}

// ReadEnv sets the tracing targets from the FILEREADER_TRACE environment
// variable, a decimal bit mask of targets. Unset or malformed values
// disable tracing.
func ReadEnv() {
	v, err := strconv.Atoi(os.Getenv(EnvVar))
	if err != nil {
		v = 0
	}

	SetTarget(Target(v))
}

// SetLogger sets the logger to use for tracing.
func SetLogger(l *log.Logger) {
	logger.Store(l)
}

// Enabled reports whether t is being traced.
func (t Target) Enabled() bool {
	return int32(t)&current.Load() != 0
}

// Print prints the given message if tracing is enabled.
func (t Target) Print(args ...interface{}) {
	if t.Enabled() {
		logger.Load().Output(2, fmt.Sprint(args...)) // nolint: errcheck
	}
}

// Printf prints the given message if tracing is enabled.
func (t Target) Printf(format string, args ...interface{}) {
	if t.Enabled() {
		logger.Load().Output(2, fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}
