package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/keybinds"
)

func TestKeyContext(t *testing.T) {
	tests := []struct {
		name    string
		screen  Screen
		editing bool
		want    keybinds.Context
	}{
		{"list", ScreenList, false, keybinds.ContextNavigation},
		{"status", ScreenStatus, false, keybinds.ContextStatus},
		{"input idle", ScreenInput, false, keybinds.ContextNavigation},
		{"input editing", ScreenInput, true, keybinds.ContextTextInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Model{screen: tt.screen, editing: tt.editing}
			if got := m.keyContext(); got != tt.want {
				t.Errorf("keyContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextInput_Backspace(t *testing.T) {
	m := CreateTestModel(t, &fakeGitClient{})
	press(m, "enter")

	press(m, "backspace")
	AssertModelField(t, "input on empty backspace", m.input, "")

	typeText(m, "héllo")
	press(m, "backspace")
	press(m, "backspace")
	AssertModelField(t, "input", m.input, "hél")
}

func TestTextInput_NavigationKeysAreText(t *testing.T) {
	m := CreateTestModel(t, &fakeGitClient{})
	press(m, "enter")

	typeText(m, "jkqrc")
	AssertModelField(t, "input", m.input, "jkqrc")
	AssertModelField(t, "cursor", m.cursor, 0)
	AssertModelField(t, "screen", m.screen, ScreenInput)
}

func TestTextInput_PasteDropsControlCharacters(t *testing.T) {
	m := CreateTestModel(t, &fakeGitClient{})
	press(m, "enter")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("line one\nline\ttwo"), Paste: true})
	AssertModelField(t, "input", m.input, "line onelinetwo")
}

func TestTextInput_IgnoresAltAndSpecialKeys(t *testing.T) {
	m := CreateTestModel(t, &fakeGitClient{})
	press(m, "enter")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	press(m, "up")
	AssertModelField(t, "input", m.input, "")
}

func TestTextInput_NotActiveWhenNotEditing(t *testing.T) {
	m := CreateTestModel(t, &fakeGitClient{})
	m.screen = ScreenInput

	press(m, "x")
	AssertModelField(t, "input", m.input, "")
}

func TestStatus_ScrollKeys(t *testing.T) {
	lines := ""
	for i := 0; i < 200; i++ {
		lines += "modified: file.go\n"
	}
	m := CreateTestModel(t, &fakeGitClient{statusOutput: lines})
	m.cursor = 1
	runCmd(t, m, press(m, "enter"))

	if m.statusView.YOffset != 0 {
		t.Fatalf("YOffset = %d, want 0", m.statusView.YOffset)
	}
	press(m, "pgdown")
	if m.statusView.YOffset == 0 {
		t.Error("pgdown should scroll the status output")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	AssertModelField(t, "YOffset after scrolling back", m.statusView.YOffset, 0)
}
