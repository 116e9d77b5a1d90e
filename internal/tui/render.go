package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/gitdash/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#4f6b3a", Dark: "#a3be8c"} // Nord green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#bf616a"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ebcb8b"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#2e4a70", Dark: "#81a1c1"} // Nord frost
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#88c0d0"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorBlue)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the active panel above the footer
func (m Model) renderMain() string {
	panelHeight := m.height - FooterHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	var panel string
	switch {
	case m.showHelp:
		panel = renderPanel(" Keys ", m.renderHelp(panelHeight-ViewportBorderWidth), m.width, panelHeight, colorBlue)
	case m.screen == ScreenStatus:
		panel = renderPanel(" Git Status ", m.renderStatus(), m.width, panelHeight, colorCyan)
	case m.screen == ScreenInput:
		border := colorGray
		if m.editing {
			border = colorYellow
		}
		panel = renderPanel(" Commit Message ", m.renderInput(), m.width, panelHeight, border)
	default:
		panel = renderPanel(" Home ", m.renderList(), m.width, panelHeight, colorGreen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.renderFooter())
}

// renderPanel draws a rounded box with the title set into the top border
func renderPanel(title, content string, width, height int, border lipgloss.TerminalColor) string {
	rb := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().Foreground(border)

	body := lipgloss.NewStyle().
		Border(rb).
		BorderTop(false).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - ViewportBorderWidth).
		Height(height - ViewportBorderWidth).
		Render(content)

	titleText := styleTitle.Render(title)
	fill := width - 3 - lipgloss.Width(titleText)
	if fill < 0 {
		fill = 0
	}
	top := borderStyle.Render(rb.TopLeft+rb.Top) +
		titleText +
		borderStyle.Render(strings.Repeat(rb.Top, fill)+rb.TopRight)

	return top + "\n" + body
}

// renderList renders the Home menu
func (m Model) renderList() string {
	if len(m.items) == 0 {
		return styleSubtle.Render("No actions")
	}

	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, " > "+styleSelected.Render(item.Label))
		} else {
			lines = append(lines, "  "+item.Label)
		}
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the cached status output, never querying git itself
func (m Model) renderStatus() string {
	var header string
	switch {
	case m.statusLoading:
		header = m.spinner.View() + " Running git status..."
	case m.statusErr != nil:
		header = styleError.Render("git status failed")
	case m.statusText == "":
		header = styleSubtle.Render("Nothing to report")
	default:
		header = styleSubtle.Render(fmt.Sprintf("%3.f%%", m.statusView.ScrollPercent()*100))
	}

	return header + "\n" + m.statusView.View()
}

// renderInput renders the commit message buffer
func (m Model) renderInput() string {
	var b strings.Builder

	b.WriteString(m.input)
	if m.editing {
		b.WriteString(styleWarning.Render("█"))
	}
	b.WriteString("\n\n")

	b.WriteString(styleSubtle.Render(m.inputHint()))
	return b.String()
}

// inputHint explains what the next key does on the Input screen. Once
// editing stops, enter runs whichever item the cursor is on.
func (m Model) inputHint() string {
	if m.editing {
		return fmt.Sprintf("Stages all changes, commits and pushes to %s", m.pushTarget())
	}

	confirm := m.keybinds.GetBindingString(keybinds.ContextNavigation, keybinds.ActionConfirm)
	back := m.keybinds.GetBindingString(keybinds.ContextNavigation, keybinds.ActionBack)

	if m.cursor >= 0 && m.cursor < len(m.items) {
		item := m.items[m.cursor]
		if item.Action == MenuActionCommitPush {
			return fmt.Sprintf("Press %s to edit the message", confirm)
		}
		return fmt.Sprintf("Press %s to open %s, %s to go back", confirm, item.Label, back)
	}
	return fmt.Sprintf("Press %s to go back", back)
}

// renderHelp lists every key reachable from the current context, at most maxLines
func (m Model) renderHelp(maxLines int) string {
	bindings := m.keybinds.ListBindings(m.keyContext())

	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-10s %s", b.Key, keybinds.GetActionInfo(b.Action).Description))
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the status line: branch, last outcome, key hints
func (m Model) renderFooter() string {
	left := styleSubtle.Render(" " + m.branchLabel())

	var msg string
	msgStyle := styleSuccess
	switch {
	case m.busy:
		msg = fmt.Sprintf("Pushing to %s...", m.pushTarget())
		msgStyle = styleWarning
	case m.errorMsg != "":
		msg = m.errorMsg
		msgStyle = styleError
	case m.statusMsg != "":
		msg = m.statusMsg
	}

	line := left
	if msg != "" {
		prefix := FooterSeparator
		if m.busy {
			prefix += m.spinner.View() + " "
		}
		avail := m.width - lipgloss.Width(line) - lipgloss.Width(prefix)
		if avail < 0 {
			avail = 0
		}
		line += prefix + msgStyle.Render(runewidth.Truncate(msg, avail, "…"))
	}

	hints := m.keyHints()
	gap := m.width - lipgloss.Width(line) - runewidth.StringWidth(hints) - 1
	if hints != "" && gap >= 1 {
		line += strings.Repeat(" ", gap) + styleSubtle.Render(hints)
	}

	return line
}

// branchLabel describes the checked-out branch
func (m Model) branchLabel() string {
	switch {
	case m.repo.Detached:
		return "⎇ (detached)"
	case m.repo.Branch == "":
		return "⎇ (no branch)"
	case m.repo.Unborn:
		return "⎇ " + m.repo.Branch + " (no commits)"
	default:
		return "⎇ " + m.repo.Branch
	}
}

// keyHints lists the main keys for the current context
func (m Model) keyHints() string {
	context := m.keyContext()

	var actions []keybinds.Action
	switch context {
	case keybinds.ContextTextInput:
		actions = []keybinds.Action{keybinds.ActionTextSubmit, keybinds.ActionTextCancel}
	case keybinds.ContextStatus:
		actions = []keybinds.Action{keybinds.ActionRefresh, keybinds.ActionCopyToClipboard, keybinds.ActionBack, keybinds.ActionQuit}
	default:
		actions = []keybinds.Action{keybinds.ActionNavigateDown, keybinds.ActionNavigateUp, keybinds.ActionConfirm, keybinds.ActionQuit}
		if m.screen != ScreenList {
			actions = append(actions, keybinds.ActionBack)
		}
	}
	if context != keybinds.ContextTextInput {
		actions = append(actions, keybinds.ActionToggleHelp)
	}

	hints := make([]string, 0, len(actions))
	for _, action := range actions {
		keys := m.keybinds.GetBinding(context, action)
		if len(keys) == 0 {
			continue
		}
		hints = append(hints, shortestKey(keys)+" "+keybinds.GetActionInfo(action).Description)
	}
	return strings.Join(hints, FooterSeparator)
}

func shortestKey(keys []string) string {
	best := keys[0]
	for _, k := range keys[1:] {
		if len(k) < len(best) {
			best = k
		}
	}
	return best
}
