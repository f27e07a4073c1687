package main

import (
	"os"
	"path/filepath"
	"sort"
)

// dirPicker is the in-TUI replacement for an OS directory dialog: navigate
// the filesystem, toggle any number of directories, confirm or cancel.
// Cancelling returns no paths, which callers treat as a no-op.
type dirPicker struct {
	dir      string
	subdirs  []string
	cursor   int
	selected map[string]bool
}

func newDirPicker(start string) dirPicker {
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		} else {
			start = string(filepath.Separator)
		}
	}
	p := dirPicker{dir: start, selected: make(map[string]bool)}
	p.rescan()
	return p
}

func (p *dirPicker) rescan() {
	p.subdirs = p.subdirs[:0]
	p.cursor = 0
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			p.subdirs = append(p.subdirs, entry.Name())
		}
	}
	sort.Strings(p.subdirs)
}

func (p *dirPicker) moveCursor(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.subdirs) {
		p.cursor = len(p.subdirs) - 1
	}
}

func (p *dirPicker) highlighted() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.subdirs) {
		return "", false
	}
	return filepath.Join(p.dir, p.subdirs[p.cursor]), true
}

// descend enters the highlighted subdirectory.
func (p *dirPicker) descend() {
	if dir, ok := p.highlighted(); ok {
		p.dir = dir
		p.rescan()
	}
}

// ascend moves to the parent directory.
func (p *dirPicker) ascend() {
	parent := filepath.Dir(p.dir)
	if parent == p.dir {
		return
	}
	p.dir = parent
	p.rescan()
}

// toggle marks or unmarks the highlighted directory for opening.
func (p *dirPicker) toggle() {
	if dir, ok := p.highlighted(); ok {
		p.selected[dir] = !p.selected[dir]
	}
}

// chosen returns the directories to open: everything toggled, or the current
// directory when nothing was toggled.
func (p *dirPicker) chosen() []string {
	var out []string
	for dir, on := range p.selected {
		if on {
			out = append(out, dir)
		}
	}
	sort.Strings(out)
	if len(out) == 0 {
		out = append(out, p.dir)
	}
	return out
}
