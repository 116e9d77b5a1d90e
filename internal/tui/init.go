package tui

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/gitdash/internal/keybinds"
	"github.com/studiowebux/gitdash/internal/logging"
)

// DefaultFPS matches a 16ms redraw interval
const DefaultFPS = 60

// New creates a new TUI model
func New(opts Options) (Model, error) {
	if opts.Client == nil {
		return Model{}, errors.New("tui: git client is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Items == nil {
		opts.Items = DefaultMenu()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}

	result := keybinds.NewValidator().ValidateRegistry(opts.Keybinds)
	if err := result.Err(); err != nil {
		return Model{}, err
	}
	for _, w := range result.Warnings {
		opts.Logger.Warn("keybinding warning", "context", w.Context, "key", w.Key, "message", w.Message)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleTitle

	m := Model{
		client:     opts.Client,
		logger:     opts.Logger,
		keybinds:   opts.Keybinds,
		clipboard:  opts.Clipboard,
		screen:     ScreenList,
		items:      opts.Items,
		statusView: viewport.New(80, 20),
		spinner:    sp,
		repo:       opts.Repo,
		remote:     opts.Remote,
		branch:     opts.Branch,
		fps:        opts.FPS,
	}

	return m, nil
}

// Run starts the TUI and blocks until the user quits
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	// Pass a pointer since Update uses a pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithFPS(m.fps))
	if _, err := p.Run(); err != nil {
		return err
	}

	m.logger.Info("dashboard closed")
	return nil
}
