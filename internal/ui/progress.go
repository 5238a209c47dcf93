package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jsxc/internal/buildpipeline"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

var labelStyles = map[string]lipgloss.Style{
	"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"written": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"cached":  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// row is the last known state of one file.
type row struct {
	path string
	last buildpipeline.Event
}

// weight is how far along the file is, 0..1.
func (r row) weight() float64 {
	switch r.last.Status {
	case buildpipeline.StatusQueued:
		return 0
	case buildpipeline.StatusCached, buildpipeline.StatusError:
		return 1
	case buildpipeline.StatusDone:
		if r.last.Stage == buildpipeline.StageWrite {
			return 1
		}
		return 0.9 // скомпилирован, ждёт записи
	}
	return [...]float64{0.05, 0.4, 0.95}[min(int(r.last.Stage), 2)]
}

type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []row
	byPath  map[string]int
	phase   string // метка стадии всей сборки
	width   int
	done    bool
	failed  int
	cached  int
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel renders build progress for files, fed by events until
// the channel is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for _, f := range files {
		m.row(f)
	}
	return m
}

// row returns the index of path, appending files that were not announced.
func (m *progressModel) row(path string) int {
	if i, ok := m.byPath[path]; ok {
		return i
	}
	m.byPath[path] = len(m.rows)
	m.rows = append(m.rows, row{path: path})
	return len(m.rows) - 1
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(buildpipeline.Event(msg)), m.next())
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
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) applyEvent(ev buildpipeline.Event) tea.Cmd {
	if ev.File == "" {
		m.phase = ev.Label()
		return nil
	}
	r := &m.rows[m.row(ev.File)]
	if ev.Status == buildpipeline.StatusError && r.last.Status != buildpipeline.StatusError {
		m.failed++
	}
	if ev.Status == buildpipeline.StatusCached {
		m.cached++
	}
	r.last = ev
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += r.weight()
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	for _, r := range m.rows {
		label := r.last.Label()
		style, ok := labelStyles[label]
		if !ok {
			style = idleStyle
			if r.last.Status == buildpipeline.StatusWorking {
				style = workingStyle
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%12s", label)), truncate(r.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	h := m.title
	if m.phase != "" {
		h += " (" + m.phase + ")"
	}
	if !m.done {
		return m.spinner.View() + " " + h
	}
	h = "done: " + h
	if m.failed > 0 || m.cached > 0 {
		h += fmt.Sprintf(", %d failed, %d cached", m.failed, m.cached)
	}
	return h
}

// truncate режет по ширине в колонках терминала, а не по байтам.
func truncate(s string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(s) <= width:
		return s
	case width <= 3:
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
