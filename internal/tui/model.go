package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QueryPort is the TUI-facing subset of the engine.
type QueryPort interface {
	Query(query, systemPrompt string) (answer, trace string)
	DocumentCount() int
	ChunkCount() int
}

// Message is one entry of the caller-owned chat transcript.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
	Trace   string
}

// Suggestions are the canned prompts offered to the user, selectable
// with the function keys.
var Suggestions = []string{
	"Which partners have >20% growth?",
	"Summary of high growth partners",
	"Who is focused on Manufacturing?",
	"Identify partners with low engagement",
}

// CorpusReloadedMsg swaps in a freshly constructed engine after the
// corpus directory changed on disk.
type CorpusReloadedMsg struct {
	Engine QueryPort
}

// Model is the Bubble Tea model for the partner assistant chat.
type Model struct {
	engine    QueryPort
	input     textinput.Model
	viewport  viewport.Model
	messages  []Message
	kpis      string
	status    string
	showTrace bool
	ready     bool
}

// New creates a new chat model. kpis is the pre-rendered KPI summary
// line shown in the header; pass an empty string when no insights exist.
func New(engine QueryPort, kpis string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about partner profiles, feedback, and strategic priorities"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		engine:   engine,
		input:    ti,
		viewport: vp,
		kpis:     kpis,
		status:   fmt.Sprintf("%d profiles, %d chunks loaded. F1-F4 run suggested prompts, ctrl+t toggles traces.", engine.DocumentCount(), engine.ChunkCount()),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, resize, and corpus-reload events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // title + kpis
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ch)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case CorpusReloadedMsg:
		m.engine = msg.Engine
		m.status = fmt.Sprintf("Corpus reloaded: %d profiles, %d chunks.", msg.Engine.DocumentCount(), msg.Engine.ChunkCount())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if q := strings.TrimSpace(m.input.Value()); q != "" {
				m.input.SetValue("")
				return m.ask(q), nil
			}
		case "ctrl+t":
			m.showTrace = !m.showTrace
			if m.showTrace {
				m.status = "Showing prompt traces."
			} else {
				m.status = "Hiding prompt traces."
			}
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, nil
		case "f1", "f2", "f3", "f4":
			idx := int(msg.String()[1] - '1')
			if idx < len(Suggestions) {
				return m.ask(Suggestions[idx]), nil
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) ask(query string) Model {
	answer, trace := m.engine.Query(query, "")
	m.messages = append(m.messages,
		Message{Role: "user", Content: query},
		Message{Role: "assistant", Content: answer, Trace: trace},
	)
	m.status = fmt.Sprintf("Answered %q", query)
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Partner Insights Assistant")
	kpis := m.kpis
	if kpis == "" {
		kpis = "No KPI data. Run the seed and process commands first."
	}
	kpiLine := kpiStyle.Render(kpis)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + kpiLine + "\n" + chat + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.messages) == 0 {
		var b strings.Builder
		b.WriteString("Suggested prompts:\n")
		for i, s := range Suggestions {
			fmt.Fprintf(&b, "  F%d  %s\n", i+1, s)
		}
		return b.String()
	}
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case "user":
			b.WriteString(userStyle.Render("You: ") + msg.Content)
		default:
			b.WriteString(assistantStyle.Render("Assistant:") + "\n" + msg.Content)
			if m.showTrace && msg.Trace != "" {
				b.WriteString("\n" + traceStyle.Render("--- prompt used ---\n"+msg.Trace))
			}
		}
	}
	return b.String()
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	kpiStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	chatBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	traceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
