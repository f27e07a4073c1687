package main

import (
	"os"
	"path/filepath"
	"sort"
)

// Folder is one opened directory and the file entries scanned from it.
// ToBeDeleted folders are purged at the end of the interaction cycle, never
// mid-cycle, so iteration over the session stays stable within a frame.
type Folder struct {
	Path        string      `json:"path"`
	Files       []FileEntry `json:"files"`
	Expanded    bool        `json:"expanded"`
	ToBeDeleted bool        `json:"-"`
}

// ScanFolder lists the regular files of dir as unparsed Idle entries with
// default ingestion parameters. Unreadable directories yield an empty,
// expanded folder; the caller reports the problem.
func ScanFolder(dir string) Folder {
	folder := Folder{Path: dir, Expanded: true}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return folder
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		preview := readPreview(filepath.Join(dir, name))
		folder.Files = append(folder.Files, newFileEntry(name, preview))
	}
	return folder
}

// ListedIndices returns the indices of the files visible in the folder
// listing under the given search phrase, in display order.
func (f *Folder) ListedIndices(searchPhrase string) []int {
	var out []int
	for i := range f.Files {
		if f.Files[i].ShouldBeListed(searchPhrase, f.Expanded) {
			out = append(out, i)
		}
	}
	return out
}
