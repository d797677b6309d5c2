package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/binding"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const visibleRows = 20

type capsModel struct {
	set      *binding.Set
	gc       gldispatch.Context
	source   string
	filter   textinput.Model
	rows     []capRow
	visible  []int
	selected int
	top      int
	status   string
}

type capRow struct {
	name string
	addr gldispatch.Addr
}

func newCapsModel(set *binding.Set, gc gldispatch.Context, source string) *capsModel {
	filter := textinput.New()
	filter.Placeholder = "filter entry points"
	filter.Prompt = "/ "
	filter.Width = 40
	filter.Focus()

	m := &capsModel{
		set:    set,
		gc:     gc,
		source: source,
		filter: filter,
	}
	m.refresh()
	return m
}

// refresh re-reads every slot from the cache.
func (m *capsModel) refresh() {
	table := m.set.Table()
	m.rows = m.rows[:0]
	for i := 0; i < table.Len(); i++ {
		m.rows = append(m.rows, capRow{name: table.Name(i), addr: m.set.Addr(i)})
	}
	m.applyFilter()
}

func (m *capsModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, row := range m.rows {
		if needle == "" || strings.Contains(strings.ToLower(row.name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
		m.top = 0
	}
}

func (m *capsModel) Init() tea.Cmd {
	return textinput.Blink
}

type reloadedMsg struct{ err error }

func (m *capsModel) reload() tea.Msg {
	return reloadedMsg{err: binding.Load(m.set, m.gc)}
}

func (m *capsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
				if m.selected < m.top {
					m.top = m.selected
				}
			}
			return m, nil

		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
				if m.selected >= m.top+visibleRows {
					m.top = m.selected - visibleRows + 1
				}
			}
			return m, nil

		case "ctrl+r":
			m.status = "reloading..."
			return m, m.reload
		}

	case reloadedMsg:
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()
		} else {
			m.status = "reloaded"
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *capsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GL Capabilities"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	end := m.top + visibleRows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for pos := m.top; pos < end; pos++ {
		row := m.rows[m.visible[pos]]
		line := m.formatRow(row)
		if pos == m.selected {
			b.WriteString(selectedStyle.Render("> " + row.name))
			b.WriteString(line[len(row.name):])
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	resolved := 0
	for _, row := range m.rows {
		if row.addr.IsValid() {
			resolved++
		}
	}
	b.WriteString(fmt.Sprintf("\n%d/%d resolved", resolved, len(m.rows)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • type to filter • ctrl+r reload • esc quit"))

	return b.String()
}

func (m *capsModel) formatRow(row capRow) string {
	if row.addr.IsValid() {
		return row.name + " " + okStyle.Render("ok") + " " + addrStyle.Render(fmt.Sprintf("%#x", uintptr(row.addr)))
	}
	return row.name + " " + missingStyle.Render("unsupported")
}

func runInteractive(set *binding.Set, gc gldispatch.Context, source string) error {
	p := tea.NewProgram(newCapsModel(set, gc, source), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
