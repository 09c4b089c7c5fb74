package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textprep/internal/domain"
	"textprep/internal/pipeline"
)

var (
	docBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
)

// Model is the Bubble Tea model for the dataset inspector.
type Model struct {
	result    *pipeline.Result
	tokenizer domain.Tokenizer
	input     textinput.Model
	viewport  viewport.Model
	splitIdx  int
	cursor    int
	status    string
	ready     bool
}

// New creates an inspector over a finished pipeline run.
func New(result *pipeline.Result, tokenizer domain.Tokenizer) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a token and press Enter to look it up"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		result:    result,
		tokenizer: tokenizer,
		input:     ti,
		viewport:  vp,
		status:    "Loaded. ↑/↓ documents, tab switches split.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := docBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := len(m.result.Summaries) + 2 + qh // header + summaries + status
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-dh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.status = m.lookup(q)
				return m, nil
			}
		case "tab":
			m.splitIdx = (m.splitIdx + 1) % 2
			m.cursor = 0
			m.viewport.SetContent(m.renderCurrentDocument())
			return m, nil
		case "down":
			if n := len(m.split().Documents); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		case "up":
			if n := len(m.split().Documents); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the inspector layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("textprep inspector")
	var summaries []string
	for _, s := range m.result.Summaries {
		summaries = append(summaries, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(s.String()))
	}
	doc := docBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + strings.Join(summaries, "\n") + "\n" + doc + "\n" + input + "\n" + status
}

func (m Model) split() domain.Split {
	if m.splitIdx == 0 {
		return m.result.Train
	}
	return m.result.Test
}

func (m Model) lookup(token string) string {
	toks := m.tokenizer.Tokenize(token)
	if len(toks) == 0 {
		return fmt.Sprintf("%q normalizes to nothing", token)
	}
	if idx, ok := m.result.Vocabulary.Index(toks[0]); ok {
		return fmt.Sprintf("%q → index %d (of %d)", toks[0], idx, m.result.Vocabulary.Size())
	}
	return fmt.Sprintf("%q is not in the vocabulary", toks[0])
}

func (m Model) renderCurrentDocument() string {
	split := m.split()
	if len(split.Documents) == 0 {
		return "No documents in this split."
	}
	doc := split.Documents[m.cursor]
	tokens := m.tokenizer.Tokenize(doc.Text)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d  %s\n", labelStyle.Render("["+split.Name+"]"), m.cursor+1, len(split.Documents), doc.Path)
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("label:"), doc.Label)
	fmt.Fprintf(&b, "%s\n%s\n\n", labelStyle.Render("text:"), excerpt(doc.Text, 400))
	fmt.Fprintf(&b, "%s\n%s\n\n", labelStyle.Render("tokens:"), excerpt(strings.Join(tokens, " "), 400))
	fmt.Fprintf(&b, "%s\n%s\n", labelStyle.Render("padded row:"), formatRow(split.Matrix[m.cursor]))
	return b.String()
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func formatRow(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
