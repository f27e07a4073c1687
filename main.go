package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"csvplot/logging"
)

func main() {
	debugLog := flag.String("debug", "", "write a debug log to this file")
	sessionPath := flag.String("session", "", "restore this session file at startup")
	flag.Parse()

	cleanup, err := logging.Setup(*debugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open debug log: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	session := NewSession()
	if *sessionPath != "" {
		session.Load(*sessionPath)
	}
	for _, dir := range flag.Args() {
		session.AddFolder(dir)
	}

	p := tea.NewProgram(initialModel(session),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Printf("program error: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
