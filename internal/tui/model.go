package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/git"
	"github.com/studiowebux/gitdash/internal/keybinds"
	"github.com/studiowebux/gitdash/internal/logging"
)

// Screen represents the panel currently shown
type Screen int

const (
	ScreenList Screen = iota
	ScreenStatus
	ScreenInput
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenStatus:
		return "status"
	case ScreenInput:
		return "input"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// MenuAction tags what a menu item does when confirmed
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionCommitPush
	MenuActionStatus
)

// MenuItem is one entry on the Home list
type MenuItem struct {
	Label  string
	Action MenuAction
}

// DefaultMenu returns the Home list entries
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Label: "Push", Action: MenuActionCommitPush},
		{Label: "Status", Action: MenuActionStatus},
	}
}

// GitClient is the subset of git operations the dashboard drives
type GitClient interface {
	Publish(ctx context.Context, message string) (git.PublishReport, error)
	Status(ctx context.Context) (string, error)
}

// Options configures a Model
type Options struct {
	Client GitClient
	Logger logging.Logger

	// Keybinds defaults to keybinds.NewDefaultRegistry()
	Keybinds *keybinds.Registry

	// Items defaults to DefaultMenu()
	Items []MenuItem

	// Repo, Remote and Branch are only displayed in the footer
	Repo   git.RepoInfo
	Remote string
	Branch string

	// Clipboard writes text to the system clipboard; defaults to atotto/clipboard
	Clipboard func(string) error

	// FPS is the render frame rate used by Run
	FPS int
}

// Model represents the TUI state
type Model struct {
	client    GitClient
	logger    logging.Logger
	keybinds  *keybinds.Registry
	clipboard func(string) error

	// Screen state machine
	screen  Screen
	cursor  int
	items   []MenuItem
	input   string
	editing bool
	exit    bool

	// showHelp replaces the panel with the key list
	showHelp bool

	// Status screen cache, filled on entry and refresh only
	statusText    string
	statusErr     error
	statusLoading bool
	statusSeq     int
	statusView    viewport.Model

	// Publish sequence
	busy        bool
	lastOutcome *git.PublishReport
	spinner     spinner.Model

	// Footer messages
	statusMsg     string
	fullStatusMsg string
	errorMsg      string
	fullErrorMsg  string

	repo   git.RepoInfo
	remote string
	branch string
	fps    int

	width  int
	height int
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("gitdash")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case statusLoadedMsg:
		// A refresh issued while a fetch was running supersedes it
		if msg.seq != m.statusSeq {
			return m, nil
		}
		m.statusLoading = false
		m.statusText = msg.output
		m.statusErr = msg.err
		if msg.err != nil {
			m.logger.Warn("status failed", "error", msg.err)
		}
		m.updateStatusView()

	case publishDoneMsg:
		cmd = m.handlePublishDone(msg)

	case clipboardMsg:
		if msg.err != nil {
			cmd = m.setErrorMessage(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			cmd = m.setStatusMessage("Status copied to clipboard")
		}

	case spinner.TickMsg:
		if m.spinning() {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case clearStatusMsg:
		m.statusMsg = ""
		m.fullStatusMsg = ""
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.renderMain()
}

func (m *Model) quit() tea.Cmd {
	m.exit = true
	return tea.Quit
}

// spinning reports whether any background git work is in flight
func (m *Model) spinning() bool {
	return m.busy || m.statusLoading
}

// updateViewport resizes the status viewport to the panel
func (m *Model) updateViewport() {
	width := m.width - ViewportPaddingHorizontal
	height := m.height - ContentOffsetStatus
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.statusView.Width = width
	m.statusView.Height = height
}

// updateStatusView loads the cached status output into the viewport
func (m *Model) updateStatusView() {
	if m.statusErr != nil {
		m.statusView.SetContent(styleError.Render(m.statusErr.Error()))
	} else {
		m.statusView.SetContent(m.statusText)
	}
	m.statusView.GotoTop()
}

func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.fullStatusMsg = msg
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	m.fullErrorMsg = ""
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.fullErrorMsg = msg
	m.errorMsg = truncateMessage(msg)
	return nil
}

// truncateMessage caps footer messages at MaxMessageLength runes
func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) > MaxMessageLength {
		return string(runes[:MaxMessageLength-3]) + "..."
	}
	return msg
}

// Message types

type statusLoadedMsg struct {
	seq    int
	output string
	err    error
}

type publishDoneMsg struct {
	report git.PublishReport
	err    error
}

type clipboardMsg struct {
	err error
}

type clearStatusMsg struct{}
