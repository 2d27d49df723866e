package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/lottiedoc/pkg/doc"
)

// Tree styles
var (
	treeSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	treeDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	treeTextStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	treeAttrKeyStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(20)
)

const maxInlineAttrs = 3

// =============================================================================
// DocumentModel - Interactive document tree
// =============================================================================

// treeRow is one visible line of the tree.
type treeRow struct {
	node  doc.Node
	depth int
}

// DocumentModel is the bubbletea model for browsing a document tree.
type DocumentModel struct {
	Root     *doc.Element
	Expanded map[*doc.Element]bool
	Cursor   int
	Offset   int
	Height   int

	rows []treeRow
}

// NewDocumentModel creates a model with the root element expanded.
func NewDocumentModel(d *doc.Document) DocumentModel {
	m := DocumentModel{
		Root:     d.Root,
		Expanded: map[*doc.Element]bool{d.Root: true},
		Height:   20,
	}
	m.rows = m.flatten()
	return m
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

func (m DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "enter", " ":
			if el := m.selected(); el != nil && len(el.Children) > 0 {
				m.Expanded[el] = !m.Expanded[el]
			}
		case "right", "l":
			if el := m.selected(); el != nil && len(el.Children) > 0 {
				m.Expanded[el] = true
			}
		case "left", "h":
			m.collapseOrParent()
		case "e":
			m.expandAll(m.Root)
		case "c":
			clear(m.Expanded)
			m.Expanded[m.Root] = true
			m.Cursor, m.Offset = 0, 0
		}
		m.rows = m.flatten()
		m.clamp()
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
		m.clamp()
	}
	return m, nil
}

func (m DocumentModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Document"))
	b.WriteString(" ")
	b.WriteString(treeDimStyle.Render(fmt.Sprintf("%d elements", m.Root.Count())))
	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render("↑/↓ navigate  ←/→ fold  ⏎ toggle  e expand all  c collapse  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.rows))
	for i := m.Offset; i < end; i++ {
		line := m.renderRow(m.rows[i])
		if i == m.Cursor {
			b.WriteString(treeSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))
	b.WriteString("\n")

	if el := m.selected(); el != nil && len(el.Attrs) > 0 {
		b.WriteString("\n")
		for _, a := range el.Attrs {
			b.WriteString("  " + treeAttrKeyStyle.Render(a.Name) + " " + StyleValue.Render(a.Value) + "\n")
		}
	}
	return b.String()
}

func (m DocumentModel) renderRow(r treeRow) string {
	indent := strings.Repeat("  ", r.depth)
	switch n := r.node.(type) {
	case doc.Text:
		return indent + "  " + treeTextStyle.Render(truncateText(string(n), 60))
	case *doc.Element:
		marker := " "
		if len(n.Children) > 0 {
			marker = "+"
			if m.Expanded[n] {
				marker = "-"
			}
		}
		return indent + treeDimStyle.Render(marker) + " " + treeNormalStyle.Render(n.Name) + inlineAttrs(n)
	}
	return indent
}

// inlineAttrs previews the first attributes of an element.
func inlineAttrs(el *doc.Element) string {
	if len(el.Attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, maxInlineAttrs+1)
	for i, a := range el.Attrs {
		if i == maxInlineAttrs {
			parts = append(parts, fmt.Sprintf("+%d", len(el.Attrs)-maxInlineAttrs))
			break
		}
		parts = append(parts, a.Name+"="+truncateText(a.Value, 16))
	}
	return " " + treeDimStyle.Render(strings.Join(parts, " "))
}

func (m DocumentModel) flatten() []treeRow {
	var rows []treeRow
	var walk func(n doc.Node, depth int)
	walk = func(n doc.Node, depth int) {
		rows = append(rows, treeRow{node: n, depth: depth})
		el, ok := n.(*doc.Element)
		if !ok || !m.Expanded[el] {
			return
		}
		for _, c := range el.Children {
			walk(c, depth+1)
		}
	}
	if m.Root != nil {
		walk(m.Root, 0)
	}
	return rows
}

func (m *DocumentModel) move(delta int) {
	m.Cursor += delta
	m.clamp()
}

func (m *DocumentModel) clamp() {
	m.Cursor = max(0, min(m.Cursor, len(m.rows)-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m DocumentModel) selected() *doc.Element {
	if m.Cursor < 0 || m.Cursor >= len(m.rows) {
		return nil
	}
	el, _ := m.rows[m.Cursor].node.(*doc.Element)
	return el
}

// collapseOrParent folds the selected element, or moves to its parent when
// it is already folded.
func (m *DocumentModel) collapseOrParent() {
	if el := m.selected(); el != nil && m.Expanded[el] && el != m.Root {
		delete(m.Expanded, el)
		return
	}
	depth := m.rows[m.Cursor].depth
	for i := m.Cursor - 1; i >= 0; i-- {
		if m.rows[i].depth < depth {
			m.Cursor = i
			return
		}
	}
}

func (m DocumentModel) expandAll(el *doc.Element) {
	if len(el.Children) == 0 {
		return
	}
	m.Expanded[el] = true
	for _, c := range el.Children {
		if child, ok := c.(*doc.Element); ok {
			m.expandAll(child)
		}
	}
}

func truncateText(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
