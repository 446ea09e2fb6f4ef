// Package terminal shows the shell as a two-pane terminal UI: entries on
// the left, the active document on the right.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/shell"
)

const (
	minSidebarWidth = 14
	chromeLines     = 4 // title, help, content border
)

// refreshMsg carries a swap of the content region into the program.
type refreshMsg struct{ view shell.View }

// Model is the bubbletea model for the terminal surface.
type Model struct {
	shell   *shell.Shell
	style   string
	entries []shell.Entry
	cursor  int

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	renderer      *glamour.TermRenderer
	rendererWidth int

	viewID  string // view currently in the viewport
	content string // rendered text of that view
}

// New creates a model over sh. style names a glamour style ("auto", "dark",
// "light", "dracula", "notty", "ascii").
func New(sh *shell.Shell, style string) Model {
	if style == "" {
		style = "auto"
	}
	return Model{
		shell:   sh,
		style:   style,
		entries: sh.Entries(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if v, ok := m.shell.Region().Current(); ok {
			m.show(v)
		}
		return m, nil

	case refreshMsg:
		// Sends can arrive out of order; the region is authoritative.
		if cur, ok := m.shell.Region().Current(); ok && cur.ID != m.viewID {
			m.show(cur)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.enter):
			if len(m.entries) > 0 {
				m.show(m.entries[m.cursor].Activate())
			}
		case key.Matches(msg, keys.pgup), key.Matches(msg, keys.pgdown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading...\n"
	}

	header := titleStyle.Render(m.shell.Title())

	sidebarHeight := m.viewport.Height
	sidebar := sidebarStyle.
		Width(m.sidebarWidth()).
		Height(sidebarHeight).
		Render(m.renderEntries())

	body := contentStyle.Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body),
		helpStyle.Render(keys.help()),
	)
}

// Content returns the text shown in the document pane.
func (m Model) Content() string { return m.content }

// Cursor returns the index of the highlighted entry.
func (m Model) Cursor() int { return m.cursor }

func (m Model) renderEntries() string {
	cur, hasCur := m.shell.Region().Current()
	var b strings.Builder
	for i, e := range m.entries {
		prefix := "  "
		style := entryStyle
		if hasCur && cur.DocID == e.ID {
			style = activeStyle
		}
		if i == m.cursor {
			prefix = "> "
			style = cursorStyle
		}
		b.WriteString(style.Render(prefix + e.Label))
		if i < len(m.entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sidebarWidth mirrors the window's 1:4 split.
func (m Model) sidebarWidth() int {
	w := m.width / 5
	if w < minSidebarWidth {
		w = minSidebarWidth
	}
	return w
}

func (m *Model) resize() {
	// Sidebar padding and both borders.
	contentWidth := m.width - m.sidebarWidth() - 4 - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := m.height - chromeLines
	if contentHeight < 5 {
		contentHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}
}

// show renders v into the viewport.
func (m *Model) show(v shell.View) {
	m.viewID = v.ID
	m.content = m.render(v.Page)
	if m.ready {
		m.viewport.SetContent(m.content)
		m.viewport.GotoTop()
	}
}

// render turns found pages into styled Markdown; fallbacks stay plain text.
func (m *Model) render(p pages.Page) string {
	found, ok := p.(pages.Found)
	if !ok {
		return p.Text()
	}
	r, err := m.glamour()
	if err != nil {
		return found.Source
	}
	out, err := r.Render(found.Source)
	if err != nil {
		return found.Source
	}
	return out
}

func (m *Model) glamour() (*glamour.TermRenderer, error) {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if m.renderer != nil && m.rendererWidth == width {
		return m.renderer, nil
	}

	styleOpt := glamour.WithStandardStyle(m.style)
	if m.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	m.renderer = r
	m.rendererWidth = width
	return r, nil
}
