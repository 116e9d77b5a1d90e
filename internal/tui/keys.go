package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/keybinds"
)

// handleKeyPress routes a key press to the handler for the current state
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return m.quit()
	}

	if m.editing {
		return m.handleTextInputKeys(msg)
	}
	return m.handleNavigationKeys(msg)
}

// keyContext returns the keybinding context for the current state
func (m *Model) keyContext() keybinds.Context {
	switch {
	case m.editing:
		return keybinds.ContextTextInput
	case m.screen == ScreenStatus:
		return keybinds.ContextStatus
	default:
		return keybinds.ContextNavigation
	}
}

// handleNavigationKeys handles keys whenever the commit message is not being edited
func (m *Model) handleNavigationKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(m.keyContext(), msg.String())
	if !ok {
		return nil
	}

	if action == keybinds.ActionToggleHelp {
		m.showHelp = !m.showHelp
		return nil
	}
	// Any other action closes the key list
	m.showHelp = false

	switch action {
	case keybinds.ActionQuit:
		return m.quit()
	case keybinds.ActionNavigateDown:
		m.moveCursorDown()
	case keybinds.ActionNavigateUp:
		m.moveCursorUp()
	case keybinds.ActionConfirm:
		return m.confirm()
	case keybinds.ActionBack:
		m.screen = ScreenList
	case keybinds.ActionRefresh:
		return m.refreshStatus()
	case keybinds.ActionCopyToClipboard:
		return m.copyStatus()
	case keybinds.ActionPageUp:
		m.statusView.PageUp()
	case keybinds.ActionPageDown:
		m.statusView.PageDown()
	case keybinds.ActionHalfPageUp:
		m.statusView.HalfPageUp()
	case keybinds.ActionHalfPageDown:
		m.statusView.HalfPageDown()
	}
	return nil
}

// handleTextInputKeys edits the commit message buffer
func (m *Model) handleTextInputKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String())
	if !ok {
		if !isTextKey(msg) {
			return nil
		}
		action = keybinds.ActionTextInsertChar
	}

	switch action {
	case keybinds.ActionTextSubmit:
		return m.submit()
	case keybinds.ActionTextCancel:
		m.editing = false
	case keybinds.ActionTextBackspace:
		m.deleteLastRune()
	case keybinds.ActionTextInsertChar:
		m.insertText(keyText(msg))
	}
	return nil
}

// isTextKey reports whether a key press carries text to insert
func isTextKey(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// keyText returns the text a key press inserts
func keyText(msg tea.KeyMsg) []rune {
	if msg.Type == tea.KeySpace {
		return []rune{' '}
	}
	return msg.Runes
}

// insertText appends printable runes; pasted control characters are dropped
func (m *Model) insertText(runes []rune) {
	buf := []rune(m.input)
	for _, r := range runes {
		if unicode.IsPrint(r) {
			buf = append(buf, r)
		}
	}
	m.input = string(buf)
}

func (m *Model) deleteLastRune() {
	runes := []rune(m.input)
	if len(runes) == 0 {
		return
	}
	m.input = string(runes[:len(runes)-1])
}
