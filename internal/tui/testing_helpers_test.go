package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/git"
)

// fakeGitClient records publish and status calls
type fakeGitClient struct {
	mu sync.Mutex

	statusOutput string
	statusErr    error
	statusCalls  int

	publishErr    error
	publishReport func(message string) git.PublishReport
	published     []string
}

func (f *fakeGitClient) Publish(_ context.Context, message string) (git.PublishReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.published = append(f.published, message)
	if f.publishReport != nil {
		return f.publishReport(message), f.publishErr
	}
	return git.PublishReport{
		Message: message,
		Steps: []git.StepResult{
			{Step: git.StepStage},
			{Step: git.StepCommit},
			{Step: git.StepPush},
		},
	}, f.publishErr
}

func (f *fakeGitClient) Status(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statusCalls++
	return f.statusOutput, f.statusErr
}

// CreateTestModel creates a Model sized 80x24 over a fake git client
func CreateTestModel(t *testing.T, client *fakeGitClient) *Model {
	t.Helper()

	m, err := New(Options{
		Client:    client,
		Remote:    "origin",
		Repo:      git.RepoInfo{Root: "/repo", Branch: "main"},
		Clipboard: func(string) error { return nil },
	})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

// AssertModelField checks a single model field against an expected value
func AssertModelField[T comparable](t *testing.T, name string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// press sends one key press and returns the resulting command
func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// typeText types s one key at a time
func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, string(r))
	}
}

// runCmd executes cmd and feeds every resulting message back into the model.
// Spinner ticks are dropped so the loop terminates.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
}

// collectMsgs executes cmd, flattening batches, and returns its messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			msgs = append(msgs, collectMsgs(c)...)
		}
	case spinner.TickMsg:
	case nil:
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

// isQuit reports whether cmd quits the program
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
