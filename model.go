package main

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type uiMode int

const (
	modeBrowser uiMode = iota
	modeSearch
	modePicker
	modeSettings
	modePathInput
)

type pathAction int

const (
	actionSaveSession pathAction = iota
	actionLoadSession
	actionExport
)

const (
	sidebarWidth = 34
	errorPaneMax = 4
)

// rowRef addresses one visible sidebar row. fileIdx == -1 marks a folder
// header row.
type rowRef struct {
	folderIdx int
	fileIdx   int
}

type model struct {
	session *Session
	width   int
	height  int

	mode   uiMode
	cursor int

	searchInput textinput.Model
	pathInput   textinput.Model
	pathAct     pathAction
	picker      dirPicker
	settings    settingsForm

	dragging    bool
	lastX       int
	lastY       int
	suppressPan bool

	status string
}

func initialModel(s *Session) model {
	search := textinput.New()
	search.Prompt = "search: "
	search.SetValue(s.SearchPhrase)
	search.CharLimit = 128

	path := textinput.New()
	path.Prompt = "path: "
	path.CharLimit = 512

	return model{
		session:     s,
		searchInput: search,
		pathInput:   path,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// visibleRows flattens the folder tree into the sidebar row list, honoring
// each folder's expansion and the session search phrase.
func (m *model) visibleRows() []rowRef {
	var rows []rowRef
	for fi := range m.session.Folders {
		folder := &m.session.Folders[fi]
		rows = append(rows, rowRef{folderIdx: fi, fileIdx: -1})
		for _, idx := range folder.ListedIndices(m.session.SearchPhrase) {
			rows = append(rows, rowRef{folderIdx: fi, fileIdx: idx})
		}
	}
	return rows
}

func (m *model) clampCursor() {
	n := len(m.visibleRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) cursorEntry() *FileEntry {
	rows := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	ref := rows[m.cursor]
	if ref.fileIdx < 0 {
		return nil
	}
	return &m.session.Folders[ref.folderIdx].Files[ref.fileIdx]
}

// errorPaneHeight is the number of rows the error log claims at the bottom.
func (m *model) errorPaneHeight() int {
	n := m.session.Errors.Len()
	if n > errorPaneMax {
		n = errorPaneMax
	}
	return n
}

// plotInnerSize returns the cell dimensions available to the braille canvas,
// inside the plot border.
func (m *model) plotInnerSize() (w, h int) {
	w = m.width - sidebarWidth - 2
	h = m.height - 1 - m.errorPaneHeight() - 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleMouse translates terminal pointer events into entry clicks and plot
// gestures. Modifier keys held during a drag select the manipulation mode:
// ctrl scales, alt shifts along y, shift shifts along x. An unmodified drag
// pans the viewport.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeBrowser {
		return m, nil
	}
	plotW, plotH := m.plotInnerSize()
	inPlot := msg.X >= sidebarWidth && msg.Y >= 1 && msg.Y <= plotH

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.X < sidebarWidth {
				top, _ := m.sidebarLayout()
				m.clickRow(top+msg.Y-1, true)
				return m, nil
			}
			if inPlot {
				m.dragging = true
				m.lastX, m.lastY = msg.X, msg.Y
				m.suppressPan = m.session.ApplyFrameInput(FrameInput{
					PrimaryPressed: true,
					PrimaryDown:    true,
					FDown:          msg.Ctrl,
					DDown:          msg.Alt,
					GDown:          msg.Shift,
				})
			}
		case tea.MouseButtonRight:
			if msg.X < sidebarWidth {
				top, _ := m.sidebarLayout()
				m.clickRow(top+msg.Y-1, false)
			}
		case tea.MouseButtonWheelUp:
			if inPlot {
				m.session.PlotDims.Zoom(0.9)
			}
		case tea.MouseButtonWheelDown:
			if inPlot {
				m.session.PlotDims.Zoom(1.1)
			}
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			break
		}
		dx := msg.X - m.lastX
		dy := msg.Y - m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		m.suppressPan = m.session.ApplyFrameInput(FrameInput{
			PrimaryDown: true,
			DX:          float64(dx),
			DY:          float64(dy),
			FDown:       msg.Ctrl,
			DDown:       msg.Alt,
			GDown:       msg.Shift,
		})
		if !m.suppressPan && (dx != 0 || dy != 0) {
			m.session.PlotDims.Pan(float64(dx), float64(dy), plotW, plotH)
		}
	case tea.MouseActionRelease:
		m.dragging = false
		m.suppressPan = false
	}
	m.session.PurgeDeletedFolders()
	m.clampCursor()
	return m, nil
}

// clickRow resolves a sidebar row index to its target and applies a primary
// or secondary click. Folder header rows toggle expansion on primary click.
func (m *model) clickRow(row int, primary bool) {
	rows := m.visibleRows()
	if row < 0 || row >= len(rows) {
		return
	}
	m.cursor = row
	ref := rows[row]
	folder := &m.session.Folders[ref.folderIdx]
	if ref.fileIdx < 0 {
		if primary {
			folder.Expanded = !folder.Expanded
		}
		return
	}
	e := &folder.Files[ref.fileIdx]
	if primary {
		e.Clicked(folder.Path, &m.session.Errors)
		log.Printf("entry %q clicked, state now %s", e.Filename, e.State)
	} else {
		e.SecondaryClicked()
	}
}
