package terminal

import (
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/shell"
)

func newTestShell(t *testing.T) *shell.Shell {
	t.Helper()
	loader := pages.NewLoader(fstest.MapFS{
		"page1.md": {Data: []byte("# Hello\n\nThe apostle.")},
		"page2.md": {Data: []byte("World")},
		"page3.md": {Data: []byte("Santiago")},
	}, "resources/md")
	sh, err := shell.New(loader, shell.Options{Title: "Camino: Who was St James?", Width: 800, Height: 600, LabelPrefix: "page"})
	require.NoError(t, err)
	return sh
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func sized(t *testing.T, sh *shell.Shell) Model {
	t.Helper()
	m, _ := update(t, New(sh, "notty"), tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewBeforeSize(t *testing.T) {
	m := New(newTestShell(t), "notty")
	require.Equal(t, "Loading...\n", m.View())
}

func TestViewShowsTitleAndEntries(t *testing.T) {
	m := sized(t, newTestShell(t))
	view := m.View()

	require.Contains(t, view, "Camino: Who was St James?")
	require.Contains(t, view, "Page 1")
	require.Contains(t, view, "Page 3")
	require.Less(t, strings.Index(view, "Page 1"), strings.Index(view, "Page 2"))
	require.Empty(t, m.Content())
}

func TestCursorMovement(t *testing.T) {
	m := sized(t, newTestShell(t))
	require.Equal(t, 0, m.Cursor())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor(), "cursor stays at the top")

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.Cursor())

	m, _ = update(t, m, runes("j"))
	require.Equal(t, 2, m.Cursor(), "cursor stays at the bottom")

	m, _ = update(t, m, runes("k"))
	require.Equal(t, 1, m.Cursor())
}

func TestEnterActivatesEntry(t *testing.T) {
	sh := newTestShell(t)
	m := sized(t, sh)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cur, ok := sh.Region().Current()
	require.True(t, ok)
	assert.Equal(t, "page1", cur.DocID)
	assert.Contains(t, m.Content(), "Hello")
	assert.Contains(t, m.Content(), "The apostle.")

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cur, _ = sh.Region().Current()
	assert.Equal(t, "page2", cur.DocID)
	assert.Contains(t, m.Content(), "World")
	assert.NotContains(t, m.Content(), "Hello")
	assert.Equal(t, 1, sh.Region().Len())
}

func TestRefreshShowsFallbackText(t *testing.T) {
	sh := newTestShell(t)
	m := sized(t, sh)

	v := sh.Activate("page9")
	m, _ = update(t, m, refreshMsg{view: v})
	assert.Contains(t, m.Content(), "File not found:")
	assert.Contains(t, m.Content(), "page9.md")
}

func TestStaleRefreshKeepsLatestView(t *testing.T) {
	sh := newTestShell(t)
	m := sized(t, sh)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first, ok := sh.Region().Current()
	require.True(t, ok)

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, refreshMsg{view: first})
	cur, _ := sh.Region().Current()
	assert.Equal(t, "page2", cur.DocID)
	assert.Contains(t, m.Content(), "World")
	assert.NotContains(t, m.Content(), "The apostle.")
}

func TestSizeShowsCurrentView(t *testing.T) {
	sh := newTestShell(t)
	sh.Activate("page3")

	m := sized(t, sh)
	assert.Contains(t, m.Content(), "Santiago")
}

func TestQuit(t *testing.T) {
	m := sized(t, newTestShell(t))

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "%s should quit", msg.String())
	}
}

func TestPageKeysScroll(t *testing.T) {
	sh := newTestShell(t)
	m := sized(t, sh)

	m.viewport.SetContent(strings.Repeat("line\n", 400))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Greater(t, m.viewport.YOffset, 0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.viewport.YOffset)
}
