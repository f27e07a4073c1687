package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsForm edits one file entry's ingestion parameters and manipulation
// fields. Edits apply immediately: integer fields keep their previous value
// while the text is invalid, delimiter and comment character take their
// first byte, and the three manipulation fields store the text verbatim
// (in-progress numeric edits are legitimate and must survive).
type settingsForm struct {
	folderIdx int
	fileIdx   int
	inputs    []textinput.Model
	focus     int
}

const (
	fieldXCol = iota
	fieldYCol
	fieldSkipHeader
	fieldSkipFooter
	fieldDelimiter
	fieldComment
	fieldScale
	fieldOffset
	fieldXOffset
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"x-column",
	"y-column",
	"skip header lines",
	"skip footer lines",
	"delimiter",
	"comment character",
	"scale",
	"y-offset",
	"x-offset",
}

func newSettingsForm(e *FileEntry, folderIdx, fileIdx int) settingsForm {
	values := [fieldCount]string{
		strconv.Itoa(e.DataFile.XCol),
		strconv.Itoa(e.DataFile.YCol),
		strconv.Itoa(e.DataFile.SkipHeader),
		strconv.Itoa(e.DataFile.SkipFooter),
		string(e.DataFile.Delimiter),
		string(e.DataFile.CommentChar),
		e.Scale.Input,
		e.Offset.Input,
		e.XOffset.Input,
	}
	form := settingsForm{folderIdx: folderIdx, fileIdx: fileIdx}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 20
		ti.SetValue(values[i])
		form.inputs = append(form.inputs, ti)
	}
	form.inputs[0].Focus()
	return form
}

func (f *settingsForm) entry(s *Session) *FileEntry {
	if f.folderIdx < 0 || f.folderIdx >= len(s.Folders) {
		return nil
	}
	folder := &s.Folders[f.folderIdx]
	if f.fileIdx < 0 || f.fileIdx >= len(folder.Files) {
		return nil
	}
	return &folder.Files[f.fileIdx]
}

func (f *settingsForm) folderPath(s *Session) string {
	if f.folderIdx < 0 || f.folderIdx >= len(s.Folders) {
		return ""
	}
	return s.Folders[f.folderIdx].Path
}

func (f *settingsForm) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = (idx + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// Update handles one key event. It reports done=true when the form should
// close.
func (f *settingsForm) Update(msg tea.KeyMsg, s *Session) (done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		f.apply(s)
		return true, nil
	case "up", "shift+tab":
		f.setFocus(f.focus - 1)
		return false, nil
	case "down", "tab":
		f.setFocus(f.focus + 1)
		return false, nil
	case "ctrl+r":
		f.apply(s)
		if e := f.entry(s); e != nil {
			e.Reload(f.folderPath(s), &s.Errors)
		}
		return false, nil
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.apply(s)
	return false, cmd
}

func (f *settingsForm) apply(s *Session) {
	e := f.entry(s)
	if e == nil {
		return
	}
	applyInt := func(idx int, dst *int) {
		if v, err := strconv.Atoi(f.inputs[idx].Value()); err == nil {
			*dst = v
		}
	}
	applyByte := func(idx int, dst *byte) {
		if text := f.inputs[idx].Value(); len(text) > 0 {
			*dst = text[0]
		}
	}
	applyInt(fieldXCol, &e.DataFile.XCol)
	applyInt(fieldYCol, &e.DataFile.YCol)
	applyInt(fieldSkipHeader, &e.DataFile.SkipHeader)
	applyInt(fieldSkipFooter, &e.DataFile.SkipFooter)
	applyByte(fieldDelimiter, &e.DataFile.Delimiter)
	applyByte(fieldComment, &e.DataFile.CommentChar)
	e.Scale.Input = f.inputs[fieldScale].Value()
	e.Offset.Input = f.inputs[fieldOffset].Value()
	e.XOffset.Input = f.inputs[fieldXOffset].Value()
}
