package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"qmlcheck/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path  string
	stage driver.Stage
	seen  bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model rendering per-file check
// progress from driver events. The channel must be closed when the run
// finishes.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progModel, cmd := m.prog.Update(msg)
		m.prog = progModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		status := statusLabel(item)
		statusStyled := styleStatus(status).Render(fmt.Sprintf("%12s", status))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	idx, ok := m.index[ev.Path]
	if !ok {
		return nil
	}
	m.items[idx].stage = ev.Stage
	m.items[idx].seen = true

	total := 0.0
	for _, item := range m.items {
		total += progressFromStage(item)
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

func progressFromStage(item fileItem) float64 {
	if !item.seen {
		return 0.0
	}
	switch item.stage {
	case driver.StageLoad:
		return 0.1
	case driver.StageParse:
		return 0.4
	case driver.StageCheck:
		return 0.7
	case driver.StageCached, driver.StageDone:
		return 1.0
	default:
		return 0.0
	}
}

func statusLabel(item fileItem) string {
	if !item.seen {
		return "queued"
	}
	switch item.stage {
	case driver.StageLoad:
		return "loading"
	case driver.StageParse:
		return "parsing"
	case driver.StageCheck:
		return "checking"
	case driver.StageCached:
		return "cached"
	case driver.StageDone:
		return "done"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "loading", "parsing", "checking":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
