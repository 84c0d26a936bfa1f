package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	answer string
	trace  string
	docs   int
	chunks int
	asked  []string
}

func (s *stubEngine) Query(query, systemPrompt string) (string, string) {
	s.asked = append(s.asked, query)
	return s.answer, s.trace
}

func (s *stubEngine) DocumentCount() int { return s.docs }

func (s *stubEngine) ChunkCount() int { return s.chunks }

func newTestModel(eng *stubEngine) Model {
	m := New(eng, "2 partners | avg revenue $100")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestModel_SubmitQuery(t *testing.T) {
	eng := &stubEngine{answer: "the answer", trace: "the trace", docs: 2, chunks: 6}
	m := newTestModel(eng)

	m.input.SetValue("Which partners have >20% growth?")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Len(t, m.messages, 2)
	assert.Equal(t, "user", m.messages[0].Role)
	assert.Equal(t, "Which partners have >20% growth?", m.messages[0].Content)
	assert.Equal(t, "assistant", m.messages[1].Role)
	assert.Equal(t, "the answer", m.messages[1].Content)
	assert.Equal(t, "the trace", m.messages[1].Trace)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, []string{"Which partners have >20% growth?"}, eng.asked)
}

func TestModel_BlankInputIgnored(t *testing.T) {
	eng := &stubEngine{answer: "a", trace: "t"}
	m := newTestModel(eng)
	m.input.SetValue("   ")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Empty(t, m.messages)
	assert.Empty(t, eng.asked)
}

func TestModel_SuggestionKeys(t *testing.T) {
	eng := &stubEngine{answer: "a", trace: "t"}
	m := newTestModel(eng)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	require.Len(t, eng.asked, 1)
	assert.Equal(t, Suggestions[0], eng.asked[0])
	require.Len(t, m.messages, 2)
}

func TestModel_TraceToggle(t *testing.T) {
	eng := &stubEngine{answer: "a", trace: "prompt trace text"}
	m := newTestModel(eng)
	m.input.SetValue("q")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.NotContains(t, m.renderTranscript(), "prompt trace text")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	assert.Contains(t, m.renderTranscript(), "prompt trace text")
}

func TestModel_CorpusReload(t *testing.T) {
	eng := &stubEngine{answer: "old", trace: "t", docs: 1, chunks: 2}
	m := newTestModel(eng)

	fresh := &stubEngine{answer: "new", trace: "t", docs: 3, chunks: 9}
	updated, _ := m.Update(CorpusReloadedMsg{Engine: fresh})
	m = updated.(Model)

	m.input.SetValue("q")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Len(t, m.messages, 2)
	assert.Equal(t, "new", m.messages[1].Content)
	assert.Empty(t, eng.asked)
}

func TestModel_QuitKeys(t *testing.T) {
	eng := &stubEngine{}
	m := newTestModel(eng)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
