package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modePicker:
		return m.handlePickerKey(msg)
	case modeSettings:
		return m.handleSettingsKey(msg)
	case modePathInput:
		return m.handlePathKey(msg)
	}
	return m.handleBrowserKey(msg)
}

func (m model) handleBrowserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plotW, plotH := m.plotInnerSize()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j":
		m.cursor++
		m.clampCursor()
	case "k":
		m.cursor--
		m.clampCursor()

	case "enter":
		m.clickRow(m.cursor, true)
	case " ":
		m.clickRow(m.cursor, false)

	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.session.SearchPhrase)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()

	case "o":
		m.picker = newDirPicker("")
		m.mode = modePicker

	case "x":
		rows := m.visibleRows()
		if m.cursor >= 0 && m.cursor < len(rows) && rows[m.cursor].fileIdx < 0 {
			m.session.Folders[rows[m.cursor].folderIdx].ToBeDeleted = true
			m.session.PurgeDeletedFolders()
			m.clampCursor()
		}

	case "r":
		rows := m.visibleRows()
		if m.cursor >= 0 && m.cursor < len(rows) && rows[m.cursor].fileIdx >= 0 {
			ref := rows[m.cursor]
			folder := &m.session.Folders[ref.folderIdx]
			folder.Files[ref.fileIdx].Reload(folder.Path, &m.session.Errors)
		}

	case "tab":
		rows := m.visibleRows()
		if m.cursor >= 0 && m.cursor < len(rows) && rows[m.cursor].fileIdx >= 0 {
			ref := rows[m.cursor]
			e := &m.session.Folders[ref.folderIdx].Files[ref.fileIdx]
			if e.IsPlotted() {
				m.settings = newSettingsForm(e, ref.folderIdx, ref.fileIdx)
				m.mode = modeSettings
			}
		}

	case "s":
		if m.session.Save("") {
			m.status = "session saved"
		}
	case "S":
		m.startPathInput(actionSaveSession, "save session as")
	case "l":
		if m.session.Load("") {
			m.status = "session loaded"
			m.cursor = 0
		}
	case "L":
		m.startPathInput(actionLoadSession, "load session from")
	case "e":
		m.startPathInput(actionExport, "export plot to")

	case "c":
		if e := m.cursorEntry(); e != nil {
			opts := e.DataFile.Options()
			m.session.CopiedOptions = &opts
			if err := optionsToClipboard(opts); err != nil {
				log.Printf("clipboard write failed: %v", err)
			}
			m.status = "options copied"
		}
	case "v":
		if e := m.cursorEntry(); e != nil {
			opts := m.session.CopiedOptions
			if opts == nil {
				if fromClip, err := optionsFromClipboard(); err == nil {
					opts = fromClip
				}
			}
			if opts != nil {
				path := e.DataFile.Filepath
				data := e.DataFile.Data
				e.DataFile = *opts
				e.DataFile.Filepath = path
				e.DataFile.Data = data
				m.status = "options pasted"
			}
		}
	case "y":
		if last := m.session.Errors.Last(); last != "" {
			if err := textToClipboard(last); err != nil {
				log.Printf("clipboard write failed: %v", err)
			}
		}

	case "left":
		m.session.PlotDims.Pan(2, 0, plotW, plotH)
	case "right":
		m.session.PlotDims.Pan(-2, 0, plotW, plotH)
	case "up":
		m.session.PlotDims.Pan(0, 1, plotW, plotH)
	case "down":
		m.session.PlotDims.Pan(0, -1, plotW, plotH)
	case "+", "=":
		m.session.PlotDims.Zoom(0.9)
	case "-":
		m.session.PlotDims.Zoom(1.1)
	case "f":
		m.session.PlotDims = PlotDims{}
	}
	return m, nil
}

func (m *model) startPathInput(act pathAction, title string) {
	m.pathAct = act
	m.pathInput.SetValue("")
	m.pathInput.Prompt = title + ": "
	m.pathInput.Focus()
	m.mode = modePathInput
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeBrowser
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetSearchPhrase(m.searchInput.Value())
	return m, cmd
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeBrowser
	case "j", "down":
		m.picker.moveCursor(1)
	case "k", "up":
		m.picker.moveCursor(-1)
	case "enter", "l":
		m.picker.descend()
	case "h", "backspace":
		m.picker.ascend()
	case " ":
		m.picker.toggle()
	case "a":
		for _, dir := range m.picker.chosen() {
			m.session.AddFolder(dir)
		}
		m.mode = modeBrowser
		m.clampCursor()
	}
	return m, nil
}

func (m model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, cmd := m.settings.Update(msg, m.session)
	if done {
		m.mode = modeBrowser
	}
	return m, cmd
}

func (m model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathInput.Blur()
		m.mode = modeBrowser
		return m, nil
	case "enter":
		path := m.pathInput.Value()
		m.pathInput.Blur()
		m.mode = modeBrowser
		switch m.pathAct {
		case actionSaveSession:
			if path == "" {
				m.session.Errors.Pushf("WARNING: No path given to save the session.")
				return m, nil
			}
			if m.session.Save(path) {
				m.status = "session saved"
			}
		case actionLoadSession:
			if path == "" {
				return m, nil
			}
			if m.session.Load(path) {
				m.status = "session loaded"
				m.cursor = 0
			}
		case actionExport:
			if path == "" {
				return m, nil
			}
			if err := m.session.ExportPNG(path); err != nil {
				m.session.Errors.Pushf("ERROR: could not export plot to %q: %v", path, err)
			} else {
				m.status = "plot exported"
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}
