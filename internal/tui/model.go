// Package tui provides the BubbleTea-based theme toggle interface.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/glimmer/internal/page"
	"github.com/jmylchreest/glimmer/internal/store"
	"github.com/jmylchreest/glimmer/internal/theme"
)

// Model is the main TUI model.
type Model struct {
	store *store.ThemeStore
	doc   *page.Document

	current theme.Theme
	styles  theme.Styles

	help help.Model
	keys KeyMap

	width  int
	height int

	statusMsg string
	statusErr bool
}

// themeChangedMsg is delivered whenever the store notifies a new theme.
type themeChangedMsg struct {
	theme theme.Theme
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// New creates a new TUI model showing the store's current theme.
// doc may be nil.
func New(s *store.ThemeStore, doc *page.Document) Model {
	current := s.Current()
	return Model{
		store:   s,
		doc:     doc,
		current: current,
		styles:  theme.StylesFor(current),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// toggle runs the store toggle off the update loop so listeners may send
// messages back into the program.
func (m Model) toggle() tea.Msg {
	if err := m.store.Toggle(); err != nil {
		return statusMsg{text: "Toggle failed: " + err.Error(), isErr: true}
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case themeChangedMsg:
		m.current = msg.theme
		m.styles = theme.StylesFor(msg.theme)
		return m, func() tea.Msg {
			return statusMsg{text: "Theme: " + msg.theme.String()}
		}

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	title := m.styles.Title.Render("Glimmerink")
	body := m.styles.Body.Render("Reality mode: " + m.current.String())

	details := ""
	if m.doc != nil {
		details = "\n" + m.styles.Body.Render("nav: "+m.doc.NavBackground())
		if avatars := m.doc.Avatars(); len(avatars) > 0 {
			details += "\n" + m.styles.Body.Render("avatars: "+avatars[0].Filter)
		}
	}

	card := m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body+details))

	status := ""
	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		status = style.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, card, status, m.help.View(m.keys))
}

// RunOptions configures the TUI.
type RunOptions struct {
	Store    *store.ThemeStore
	Document *page.Document
	// Watcher, when non-nil, is started for the lifetime of the program.
	Watcher *store.FileWatcher
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	m := New(opts.Store, opts.Document)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Forward every change, including reloads from the watcher
	opts.Store.Subscribe(func(t theme.Theme) error {
		p.Send(themeChangedMsg{theme: t})
		return nil
	})

	if opts.Watcher != nil {
		if err := opts.Watcher.Start(); err != nil {
			slog.Warn("failed to start file watcher, external changes will not be shown", "error", err)
		} else {
			defer opts.Watcher.Stop()
		}
	}

	_, err := p.Run()
	return err
}
