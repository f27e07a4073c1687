package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirPickerNavigation(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"beta", "alpha"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o700); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "file.csv"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := newDirPicker(root)
	if len(p.subdirs) != 2 || p.subdirs[0] != "alpha" || p.subdirs[1] != "beta" {
		t.Fatalf("subdirs = %v", p.subdirs)
	}

	p.descend()
	if p.dir != filepath.Join(root, "alpha") {
		t.Errorf("dir = %q after descend", p.dir)
	}
	p.ascend()
	if p.dir != root {
		t.Errorf("dir = %q after ascend", p.dir)
	}
}

func TestDirPickerChosen(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o700); err != nil {
			t.Fatal(err)
		}
	}

	p := newDirPicker(root)
	// Nothing toggled: the current directory is the choice.
	if got := p.chosen(); len(got) != 1 || got[0] != root {
		t.Errorf("chosen = %v", got)
	}

	p.toggle()
	p.moveCursor(1)
	p.toggle()
	got := p.chosen()
	if len(got) != 2 || got[0] != filepath.Join(root, "a") || got[1] != filepath.Join(root, "b") {
		t.Errorf("chosen = %v", got)
	}

	// Toggling off removes the mark.
	p.toggle()
	if got := p.chosen(); len(got) != 1 || got[0] != filepath.Join(root, "a") {
		t.Errorf("chosen after untoggle = %v", got)
	}
}
