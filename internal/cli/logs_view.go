package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
)

// logRow is one selectable line in the browser: either a group header or an
// incident inside an expanded group.
type logRow struct {
	groupIdx int
	incident *domain.Incident
	name     string
}

type logsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

var logsKeys = logsKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy narrative")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// logsModel is the interactive incident browser. Groups start collapsed and
// expand in place.
type logsModel struct {
	groups   []formatter.IncidentGroup
	expanded map[int]bool
	cursor   int
	status   string
}

func newLogsModel(groups []formatter.IncidentGroup) *logsModel {
	return &logsModel{
		groups:   groups,
		expanded: make(map[int]bool),
	}
}

func (m *logsModel) Init() tea.Cmd { return nil }

func (m *logsModel) rows() []logRow {
	var rows []logRow
	for gi := range m.groups {
		rows = append(rows, logRow{groupIdx: gi, name: m.groups[gi].Name})
		if m.expanded[gi] {
			for ii := range m.groups[gi].Incidents {
				rows = append(rows, logRow{
					groupIdx: gi,
					incident: &m.groups[gi].Incidents[ii],
					name:     m.groups[gi].Name,
				})
			}
		}
	}
	return rows
}

func (m *logsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.rows()
	switch {
	case key.Matches(keyMsg, logsKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, logsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""

	case key.Matches(keyMsg, logsKeys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
		m.status = ""

	case key.Matches(keyMsg, logsKeys.Toggle):
		if m.cursor < len(rows) {
			gi := rows[m.cursor].groupIdx
			if rows[m.cursor].incident == nil {
				m.expanded[gi] = !m.expanded[gi]
			}
		}
		m.status = ""

	case key.Matches(keyMsg, logsKeys.Copy):
		if m.cursor < len(rows) && rows[m.cursor].incident != nil {
			if err := clipboard.WriteAll(rows[m.cursor].incident.Details); err != nil {
				m.status = formatter.StyleRed.Render("clipboard: " + err.Error())
			} else {
				m.status = formatter.StyleGreen.Render("narrative copied")
			}
		}
	}
	return m, nil
}

func (m *logsModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("Incident Logs") + "\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString("  " + formatter.StyleDim.Render("No incidents recorded.") + "\n")
		b.WriteString(m.footer())
		return b.String()
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		if row.incident == nil {
			marker := "+"
			if m.expanded[row.groupIdx] {
				marker = "-"
			}
			count := len(m.groups[row.groupIdx].Incidents)
			b.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursor,
				formatter.StyleDim.Render(marker),
				formatter.StyleBold.Render(row.name),
				formatter.StyleDim.Render(fmt.Sprintf("(%d)", count))))
			continue
		}

		inc := *row.incident
		b.WriteString(fmt.Sprintf("%s    %s %s  %s  %s\n",
			cursor,
			formatter.StyleDim.Render(shortID(inc.ID)),
			formatter.ViolationStyle(inc.Type).Render(string(inc.Type)),
			formatter.StyleDim.Render(formatter.DisplayTime(inc)),
			formatter.ActionStyle(inc.Action).Render(string(inc.Action))))
		if i == m.cursor {
			b.WriteString("        " + formatter.StyleFg.Render(inc.Details) + "\n")
		}
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m *logsModel) footer() string {
	help := []string{
		logsKeys.Up.Help().Key + "/" + logsKeys.Down.Help().Key + " move",
		logsKeys.Toggle.Help().Key + " " + logsKeys.Toggle.Help().Desc,
		logsKeys.Copy.Help().Key + " " + logsKeys.Copy.Help().Desc,
		logsKeys.Quit.Help().Key + " " + logsKeys.Quit.Help().Desc,
	}
	out := "\n  " + formatter.StyleDim.Render(strings.Join(help, "  ·  ")) + "\n"
	if m.status != "" {
		out += "  " + m.status + "\n"
	}
	return out
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
