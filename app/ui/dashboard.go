// Package ui provides the terminal dashboard.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskflow/app/content"
	"taskflow/app/models"
	"taskflow/app/services"
)

const progressWidth = 30

type mode int

const (
	modeList mode = iota
	modeAdd
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Padding(0, 1)
	tabStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	doneStyle        = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneCountStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	activeCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, tasks *services.TaskService) error {
	program := tea.NewProgram(NewModel(ctx, tasks), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model for the dashboard. It re-renders from the
// service snapshot after every mutation.
type Model struct {
	ctx      context.Context
	tasks    *services.TaskService
	data     models.Dashboard
	cursor   int
	mode     mode
	input    textinput.Model
	status   string
	showHelp bool
}

// NewModel creates a dashboard model over tasks.
func NewModel(ctx context.Context, tasks *services.TaskService) *Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 256
	ti.Width = 50

	m := &Model{
		ctx:    ctx,
		tasks:  tasks,
		input:  ti,
		status: "Press a to add, space to toggle, d to delete.",
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m *Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveAddMode("Cancelled")
		return m, nil
	case tea.KeyEnter:
		if task, ok := m.tasks.CreateTask(m.ctx, m.input.Value()); ok {
			m.refresh()
			m.cursor = 0
			m.leaveAddMode(fmt.Sprintf("Added %q", task.Title))
		} else {
			m.leaveAddMode("Nothing to add")
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveAddMode(status string) {
	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
	m.status = status
}

func (m *Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a", "n":
		m.mode = modeAdd
		m.status = "Enter to add, Esc to cancel"
		return m, m.input.Focus()
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.data.Tasks))
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.data.Tasks))
	case " ", "x", "enter":
		if task, ok := m.selected(); ok {
			m.tasks.ToggleTask(m.ctx, task.ID)
			m.refresh()
			m.status = fmt.Sprintf("Toggled %q", task.Title)
		}
	case "d", "delete":
		if task, ok := m.selected(); ok {
			m.tasks.DeleteTask(m.ctx, task.ID)
			m.refresh()
			m.status = fmt.Sprintf("Deleted %q", task.Title)
		}
	case "1":
		m.setFilter(models.FilterAll)
	case "2":
		m.setFilter(models.FilterActive)
	case "3":
		m.setFilter(models.FilterCompleted)
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) setFilter(f models.Filter) {
	m.tasks.SetFilter(m.ctx, f)
	m.refresh()
	m.cursor = 0
	m.status = "Showing " + f.String()
}

func (m *Model) selected() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.data.Tasks) {
		return models.Task{}, false
	}
	return m.data.Tasks[m.cursor], true
}

func (m *Model) refresh() {
	m.data = m.tasks.Dashboard(m.ctx)
	m.cursor = clampCursor(m.cursor, len(m.data.Tasks))
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	if m.mode == modeAdd {
		b.WriteString(Icon("Plus") + " " + m.input.View() + "\n\n")
	}

	writeFilters(&b, m.data.Filter)
	m.writeTasks(&b)
	writeStats(&b, m.data.Stats)

	b.WriteString(mutedStyle.Render(m.status) + "\n")
	b.WriteString(mutedStyle.Render("Press ? for help | q to quit") + "\n")
	return b.String()
}

func writeTitle(b *strings.Builder) {
	b.WriteString(titleStyle.Render(Icon("CheckCircle2")+" TaskFlow") + "\n\n")
}

func writeFilters(b *strings.Builder, active models.Filter) {
	tabs := make([]string, 0, len(models.Filters))
	for i, f := range models.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")
}

func (m *Model) writeTasks(b *strings.Builder) {
	if len(m.data.Tasks) == 0 {
		img := content.EmptyState()
		b.WriteString("  No tasks yet\n")
		b.WriteString(mutedStyle.Render("  Add your first task with a to get started.") + "\n")
		b.WriteString(mutedStyle.Render("  "+img.Fallback) + "\n\n")
		return
	}

	for i, task := range m.data.Tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		b.WriteString(pointer + formatTask(task) + "\n")
	}
	b.WriteString("\n")
}

func formatTask(t models.Task) string {
	icon := Icon("Circle")
	title := t.Title
	desc := t.Description
	if t.Completed {
		icon = Icon("CheckCircle")
		title = doneStyle.Render(title)
		if desc != "" {
			desc = doneStyle.Render(desc)
		}
	}

	line := fmt.Sprintf("%s %s", icon, title)
	if desc != "" {
		line += mutedStyle.Render(" - ") + desc
	}
	return line + mutedStyle.Render("  Created: "+t.CreatedAt.Local().Format("2006-01-02"))
}

func writeStats(b *strings.Builder, st models.Stats) {
	b.WriteString(fmt.Sprintf("Total %d  %s  %s\n",
		st.Total,
		doneCountStyle.Render(fmt.Sprintf("Done %d", st.Completed)),
		activeCountStyle.Render(fmt.Sprintf("Active %d", st.Active)),
	))
	b.WriteString(fmt.Sprintf("Progress %s %d%%\n\n", progressBar(st.CompletionRate, progressWidth), st.CompletionRate))
}

// progressBar draws rate (0-100) as a bar of width cells.
func progressBar(rate, width int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	filled := rate * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  a, n          Add a task (Enter confirms, Esc cancels)\n")
	b.WriteString("  j/k, arrows   Move selection\n")
	b.WriteString("  space, x      Toggle selected task\n")
	b.WriteString("  d             Delete selected task\n")
	b.WriteString("  1 / 2 / 3     Show All / Active / Completed\n")
	b.WriteString("  ?, h          Toggle this help screen\n")
	b.WriteString("  q, ctrl+c     Quit\n\n")
}
