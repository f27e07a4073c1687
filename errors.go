package main

import "fmt"

// maxLoggedErrors bounds the user-visible error log; older entries rotate out.
const maxLoggedErrors = 10

// ErrorLog collects human-readable warnings and errors from all components.
// Failures are reported here instead of being propagated as errors across
// component boundaries, so no data or I/O problem ever aborts the frame loop.
type ErrorLog struct {
	entries []string
}

// Pushf appends a formatted entry, rotating out the oldest ones so at most
// maxLoggedErrors are retained.
func (l *ErrorLog) Pushf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
	if n := len(l.entries) - maxLoggedErrors; n > 0 {
		l.entries = append([]string(nil), l.entries[n:]...)
	}
}

func (l *ErrorLog) Entries() []string { return l.entries }

func (l *ErrorLog) Len() int { return len(l.entries) }

// Last returns the newest entry, or "" when the log is empty.
func (l *ErrorLog) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}
