package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/git"
)

// moveCursorDown advances the cursor, wrapping to the first item
func (m *Model) moveCursorDown() {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + 1) % len(m.items)
}

// moveCursorUp retreats the cursor, wrapping to the last item
func (m *Model) moveCursorUp() {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
}

// confirm dispatches on the selected item's action tag
func (m *Model) confirm() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}

	switch m.items[m.cursor].Action {
	case MenuActionCommitPush:
		m.screen = ScreenInput
		m.editing = true
	case MenuActionStatus:
		m.screen = ScreenStatus
		return m.refreshStatus()
	}
	return nil
}

// submit starts the publish sequence with the typed commit message.
// The screen returns to the list immediately; the outcome arrives as publishDoneMsg.
func (m *Model) submit() tea.Cmd {
	message := m.input
	if strings.TrimSpace(message) == "" {
		return nil
	}
	if m.busy {
		return m.setErrorMessage("A push is already running, wait for it to finish")
	}

	wasSpinning := m.spinning()

	m.input = ""
	m.editing = false
	m.screen = ScreenList
	m.busy = true
	m.errorMsg = ""
	m.fullErrorMsg = ""
	m.statusMsg = ""
	m.fullStatusMsg = ""

	m.logger.Info("publish started", "remote", m.remote, "branch", m.branch)

	cmd := publishCmd(m.client, message)
	if wasSpinning {
		return cmd
	}
	return tea.Batch(m.spinner.Tick, cmd)
}

// refreshStatus starts a status fetch; a newer fetch supersedes older ones
func (m *Model) refreshStatus() tea.Cmd {
	wasSpinning := m.spinning()

	m.statusSeq++
	m.statusLoading = true
	m.statusErr = nil

	cmd := fetchStatusCmd(m.client, m.statusSeq)
	if wasSpinning {
		return cmd
	}
	return tea.Batch(m.spinner.Tick, cmd)
}

// copyStatus copies the cached status output to the system clipboard
func (m *Model) copyStatus() tea.Cmd {
	if m.statusText == "" {
		return m.setStatusMessage("Nothing to copy")
	}
	write := m.clipboard
	text := m.statusText
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}

// handlePublishDone records the outcome of a publish sequence
func (m *Model) handlePublishDone(msg publishDoneMsg) tea.Cmd {
	m.busy = false
	report := msg.report
	m.lastOutcome = &report

	for _, step := range report.Steps {
		if step.Err != nil {
			m.logger.Error("publish step failed", "step", step.Step, "error", step.Err)
			continue
		}
		m.logger.Info("publish step done", "step", step.Step, "duration", step.Result.Duration)
	}

	if msg.err != nil {
		return m.setErrorMessage(describePublishError(report, msg.err))
	}

	done := m.setStatusMessage(fmt.Sprintf("Pushed %q to %s", report.Message, m.pushTarget()))

	// Status output is stale after a commit
	if m.screen == ScreenStatus {
		return tea.Batch(done, m.refreshStatus())
	}
	if m.statusText != "" || m.statusErr != nil {
		m.statusText = ""
		m.statusErr = nil
		m.updateStatusView()
	}
	return done
}

// describePublishError names the failing step, the steps that succeeded
// and the first line of git's output
func describePublishError(report git.PublishReport, err error) string {
	var done []string
	for _, s := range report.Steps {
		if s.Err == nil {
			done = append(done, string(s.Step)+" ok")
		}
	}

	failed, ok := report.Failed()
	if !ok {
		return fmt.Sprintf("Push failed: %s", firstLine(err.Error()))
	}

	detail := failed.Err.Error()
	var gitErr *git.GitError
	if errors.As(failed.Err, &gitErr) && strings.TrimSpace(gitErr.Output) != "" {
		detail = gitErr.Output
	}

	msg := fmt.Sprintf("%s failed: %s", failed.Step, firstLine(detail))
	if len(done) > 0 {
		msg = strings.Join(done, ", ") + "; " + msg
	}
	return msg
}

// pushTarget describes where a push goes
func (m *Model) pushTarget() string {
	branch := m.branch
	if branch == "" {
		branch = m.repo.Branch
	}
	if branch == "" {
		return m.remote
	}
	return m.remote + "/" + branch
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// publishCmd runs stage, commit and push off the event loop
func publishCmd(client GitClient, message string) tea.Cmd {
	return func() tea.Msg {
		report, err := client.Publish(context.Background(), message)
		return publishDoneMsg{report: report, err: err}
	}
}

// fetchStatusCmd queries the working tree status off the event loop
func fetchStatusCmd(client GitClient, seq int) tea.Cmd {
	return func() tea.Msg {
		output, err := client.Status(context.Background())
		return statusLoadedMsg{seq: seq, output: output, err: err}
	}
}
