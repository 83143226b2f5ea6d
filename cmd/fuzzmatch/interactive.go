package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fuzz-bridge/metric"
	"github.com/wippyai/fuzz-bridge/rank"
	"github.com/wippyai/fuzz-bridge/seq"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	metricStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxVisible = 15

type interactiveModel struct {
	err       error
	input     textinput.Model
	choices   []string
	bufs      []*seq.Buffer
	metrics   []string
	metricIdx int
	results   []rank.Result
}

func newInteractiveModel(metricName string, choices []string) (*interactiveModel, error) {
	bufs := make([]*seq.Buffer, len(choices))
	for i, c := range choices {
		b, err := seq.Convert(c)
		if err != nil {
			return nil, fmt.Errorf("convert choice %d: %w", i, err)
		}
		bufs[i] = b
	}

	metrics := metric.Names()
	idx := 0
	for i, name := range metrics {
		if name == metricName {
			idx = i
			break
		}
	}

	ti := textinput.New()
	ti.Placeholder = "type to match"
	ti.Prompt = "query: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		input:     ti,
		choices:   choices,
		bufs:      bufs,
		metrics:   metrics,
		metricIdx: idx,
	}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.metricIdx = (m.metricIdx + 1) % len(m.metrics)
			m.rerank()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.rerank()
	return m, cmd
}

func (m *interactiveModel) rerank() {
	m.err = nil
	m.results = nil

	query := m.input.Value()
	if query == "" {
		return
	}

	q, err := seq.Convert(query)
	if err != nil {
		m.err = err
		return
	}

	factory, _ := metric.Lookup(m.metrics[m.metricIdx])
	results, err := rank.Extract(context.Background(), factory, q, m.bufs, 0, 0)
	if err != nil {
		m.err = err
		return
	}
	m.results = results
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fuzzmatch"))
	b.WriteString(" metric: ")
	b.WriteString(metricStyle.Render(m.metrics[m.metricIdx]))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")

	case len(m.results) == 0:
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d choices loaded", len(m.choices))))
		b.WriteString("\n")

	default:
		shown := m.results
		if len(shown) > maxVisible {
			shown = shown[:maxVisible]
		}
		for _, r := range shown {
			b.WriteString(scoreStyle.Render(fmt.Sprintf("%8.4f", r.Score)))
			b.WriteString("  ")
			b.WriteString(m.choices[r.Index])
			b.WriteString("\n")
		}
		if len(m.results) > maxVisible {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(m.results)-maxVisible)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch metric • esc quit"))
	return b.String()
}

func runInteractive(metricName string, choices []string) error {
	if len(choices) == 0 {
		return fmt.Errorf("no choices given")
	}
	model, err := newInteractiveModel(metricName, choices)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
