// Package logging routes the standard logger to a debug file when one is
// requested, and silences it otherwise so log output never corrupts the
// terminal UI.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures the global logger. With an empty filename all output is
// discarded. The returned cleanup closes the log file and must be called on
// shutdown.
func Setup(filename string) (func(), error) {
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(filename, "csvplot")
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { f.Close() }, nil
}
