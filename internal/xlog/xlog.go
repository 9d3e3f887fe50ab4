// Package xlog is a minimal leveled writer for the module's two logging
// channels: the `-log` comment-log stream and the anytime-search
// progress line, both written as PACE-style `c ...` comments so a
// decomposition's stdout stays a valid PACE stream even with logging on
// (spec §6, §9). It exists because no example repo in this module's
// lineage pulls in a structured-logging library for a CLI this size;
// see DESIGN.md.
package xlog

import (
	"fmt"
	"io"
)

// Logger writes `c`-prefixed comment lines to an underlying io.Writer.
// A nil *Logger or a Logger built over a nil io.Writer silently discards
// every call, so callers never need a "logging enabled" branch.
type Logger struct {
	w io.Writer
}

// New wraps w. w may be nil.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Commentf writes a free-form comment line.
func (l *Logger) Commentf(format string, args ...interface{}) {
	if l == nil || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "c "+format+"\n", args...)
}

// Statusf writes an anytime progress line: "c status <width+1> <epoch-ms>".
// width is the decomposition's Width(); epochMs is the caller's own
// time.Now().UnixMilli() so the orchestrator stays in control of the
// clock source.
func (l *Logger) Statusf(width int, epochMs int64) {
	if l == nil || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "c status %d %d\n", width+1, epochMs)
}
