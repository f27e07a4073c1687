package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const browserHints = "enter plot · space highlight · / search · o open folder · tab settings · s save · e export · q quit"

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	switch m.mode {
	case modePicker:
		return m.overlay(m.pickerView())
	case modeSettings:
		return m.overlay(m.settingsView())
	case modePathInput:
		return m.overlay(dialogStyle.Render(m.pathInput.View()))
	}

	var b strings.Builder
	b.WriteString(m.hintBar())
	b.WriteByte('\n')

	plotW, plotH := m.plotInnerSize()
	sidebar := m.sidebarView()
	plot := plotBorderStyle.Render(RenderPlot(m.session, plotW, plotH))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, plot))

	if pane := m.errorPane(); pane != "" {
		b.WriteByte('\n')
		b.WriteString(pane)
	}
	return b.String()
}

func (m model) hintBar() string {
	if m.mode == modeSearch {
		return hintBarStyle.Width(m.width).Render(m.searchInput.View())
	}
	text := browserHints
	if m.status != "" {
		text = statusStyle.Render(m.status) + "  " + text
	}
	return hintBarStyle.Width(m.width).Render(text)
}

// sidebarLayout computes the first visible row and the row capacity of the
// file list. Mouse hit testing resolves clicks through the same offsets the
// renderer uses, so a scrolled list still maps the pointer to the row under
// it.
func (m model) sidebarLayout() (top, listHeight int) {
	_, plotH := m.plotInnerSize()
	height := plotH + 2
	previewLines := 0
	if preview := m.previewView(); preview != "" {
		previewLines = lipgloss.Height(preview)
	}
	listHeight = height - previewLines
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor >= listHeight {
		top = m.cursor - listHeight + 1
	}
	return top, listHeight
}

// sidebarView renders the folder tree plus the preview of the entry under
// the cursor.
func (m model) sidebarView() string {
	rows := m.visibleRows()
	preview := m.previewView()
	top, listHeight := m.sidebarLayout()

	var lines []string
	for i := top; i < len(rows) && len(lines) < listHeight; i++ {
		lines = append(lines, m.rowView(rows[i], i == m.cursor))
	}
	for len(lines) < listHeight {
		lines = append(lines, "")
	}
	list := lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
	if preview == "" {
		return list
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, preview)
}

func (m model) rowView(ref rowRef, underCursor bool) string {
	marker := "  "
	if underCursor {
		marker = cursorStyle.Render("> ")
	}
	folder := &m.session.Folders[ref.folderIdx]
	if ref.fileIdx < 0 {
		arrow := "▾ "
		style := folderStyle
		if !folder.Expanded {
			arrow = "▸ "
			style = folderCollapsedStyle
		}
		return marker + style.Render(arrow+truncate(folder.Path, sidebarWidth-4))
	}
	e := &folder.Files[ref.fileIdx]
	return marker + "  " + fileRowStyle(e).Render(truncate(e.Filename, sidebarWidth-6))
}

func (m model) previewView() string {
	e := m.cursorEntry()
	if e == nil || e.Preview == "" {
		return ""
	}
	return previewStyle.Width(sidebarWidth - 2).Render(e.Preview)
}

func (m model) errorPane() string {
	entries := m.session.Errors.Entries()
	n := m.errorPaneHeight()
	if n == 0 {
		return ""
	}
	var lines []string
	for _, entry := range entries[len(entries)-n:] {
		style := errorLogStyle
		if strings.HasPrefix(entry, "WARNING") {
			style = warningLogStyle
		}
		lines = append(lines, style.Render(truncate(entry, m.width)))
	}
	return strings.Join(lines, "\n")
}

func (m model) pickerView() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("open folders"))
	b.WriteString("\n")
	b.WriteString(filepath.Clean(m.picker.dir))
	b.WriteString("\n\n")
	if len(m.picker.subdirs) == 0 {
		b.WriteString(filePrevStyle.Render("(no subdirectories)"))
	}
	for i, name := range m.picker.subdirs {
		marker := "  "
		if i == m.picker.cursor {
			marker = cursorStyle.Render("> ")
		}
		check := "[ ] "
		if m.picker.selected[filepath.Join(m.picker.dir, name)] {
			check = "[x] "
		}
		b.WriteString(marker + check + name + "\n")
	}
	b.WriteString("\n")
	b.WriteString(filePrevStyle.Render("space select · enter descend · h up · a add · esc cancel"))
	return dialogStyle.Render(b.String())
}

func (m model) settingsView() string {
	e := m.settings.entry(m.session)
	title := "settings"
	if e != nil {
		title = fmt.Sprintf("settings: %s", e.Filename)
	}
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.settings.inputs {
		label := fieldLabelStyle
		if i == m.settings.focus {
			label = fieldFocusStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(filePrevStyle.Render("tab next field · ctrl+r reload · enter close"))
	return dialogStyle.Render(b.String())
}

func (m model) overlay(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
