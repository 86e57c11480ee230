package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/shapestone/jqstream/pkg/jqstream"
)

type tickMsg time.Time

const maxHistory = 500

// exploreModel is the bubbletea model for `jqstream explore`. It pulls one
// token at a time from a sanitized stream on every tick and renders the
// scope stack alongside a scrolling log of recent tokens.
type exploreModel struct {
	stream *jqstream.Sanitized
	sugar  *zap.SugaredLogger

	history  []string
	pulled   int
	done     bool
	lastErr  *jqstream.Err
	viewport viewport.Model
	ready    bool
	style    lipgloss.Style
}

func newExploreModel(stream *jqstream.Sanitized, sugar *zap.SugaredLogger) *exploreModel {
	return &exploreModel{
		stream: stream,
		sugar:  sugar,
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Margin(1, 2),
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*40, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.done {
			m.step()
			return m, tick()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.viewport.LineUp(1)
		case "down", "j":
			m.viewport.LineDown(1)
		case "pgup":
			m.viewport.LineUp(m.viewport.Height)
		case "pgdown":
			m.viewport.LineDown(m.viewport.Height)
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 6
		height := msg.Height - 8
		style := m.viewport.Style
		m.viewport = viewport.New(width, height)
		m.viewport.Style = style
		m.ready = true
	}
	return m, nil
}

// step pulls exactly one item from the stream and records it, mirroring
// the single-token-per-Next contract the core streams guarantee.
func (m *exploreModel) step() {
	item, ok := m.stream.Next()
	if !ok {
		m.done = true
		m.sugar.Debugw("stream exhausted", "tokens_pulled", m.pulled)
		return
	}
	m.pulled++

	if item.Err != nil {
		m.lastErr = item.Err
		m.done = true
		m.history = append(m.history, fmt.Sprintf("ERROR: %s", item.Err.Error()))
		m.sugar.Debugw("stream error", "error", item.Err.Error(), "tokens_pulled", m.pulled)
		return
	}

	line := fmt.Sprintf("%-4d %-12s %s  %s", m.pulled, item.Tok.Kind.String(), tokenPayload(item.Tok), scopeSummary(m.stream.Path()))
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func tokenPayload(tok jqstream.Token) string {
	switch tok.Kind {
	case jqstream.StringKind:
		return fmt.Sprintf("%q", tok.Text)
	case jqstream.NumberKind:
		return tok.Text
	case jqstream.ParsedNumber:
		return fmt.Sprintf("%g", tok.Num)
	default:
		return ""
	}
}

func scopeSummary(path []jqstream.Scope) string {
	if len(path) == 0 {
		return "$"
	}
	var sb strings.Builder
	sb.WriteString("$")
	for _, s := range path {
		switch s.Kind {
		case jqstream.ScopeArray:
			fmt.Fprintf(&sb, "[%d]", s.Index)
		case jqstream.ScopeObject:
			sb.WriteString(".{}")
		case jqstream.ScopeObjectAtKey:
			fmt.Fprintf(&sb, ".%s", s.Key)
		}
	}
	return sb.String()
}

func (m *exploreModel) View() string {
	if !m.ready {
		return ""
	}

	var sb strings.Builder
	start := 0
	if len(m.history) > m.viewport.Height {
		start = len(m.history) - m.viewport.Height
	}
	for _, line := range m.history[start:] {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Render(line) + "\n")
	}
	m.viewport.SetContent(sb.String())

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#555555")).
		Padding(0, 1).
		Render(" jqstream explore ")

	status := lipgloss.NewStyle().
		Padding(0, 1).
		Render(fmt.Sprintf("tokens: %d  |  q: quit", m.pulled))

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.viewport.View(),
		status,
	)
	return m.style.Render(view)
}
