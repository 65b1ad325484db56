// Package ui drives an interactive bubbletea progress display for
// multi-file "edlgen generate" runs, with one row per file moving
// through the lex/parse/plan/write stages of internal/genpipeline.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"edlgen/internal/genpipeline"
)

type progressModel struct {
	title   string
	events  <-chan genpipeline.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
	failed  int
}

type fileItem struct {
	path   string
	status string
	stage  genpipeline.Stage
}

type eventMsg genpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model rendering per-file generation
// progress for files, fed by events.
func NewProgressModel(title string, files []string, events <-chan genpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
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
		cmd := m.applyEvent(genpipeline.Event(msg))
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
		newProg, cmd := m.prog.Update(msg)
		m.prog = newProg.(progress.Model)
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
		if m.failed > 0 {
			header = fmt.Sprintf("%s (%d failed)", header, m.failed)
		}
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%10s", item.status))
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

func (m *progressModel) applyEvent(ev genpipeline.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	idx, ok := m.index[ev.File]
	if !ok || label == "" {
		return nil
	}
	prevStatus := m.items[idx].status
	m.items[idx].status = label
	m.items[idx].stage = ev.Stage
	if prevStatus != "error" && label == "error" {
		m.failed++
	}

	total := 0.0
	for _, item := range m.items {
		if item.status == "done" || item.status == "error" {
			total += 1.0
		} else {
			total += progressFromStage(item.stage)
		}
	}
	if len(m.items) == 0 {
		return nil
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

func progressFromStage(stage genpipeline.Stage) float64 {
	switch stage {
	case genpipeline.StageLex:
		return 0.15
	case genpipeline.StageParse:
		return 0.45
	case genpipeline.StagePlan:
		return 0.75
	case genpipeline.StageWrite:
		return 0.9
	case genpipeline.StageCacheHit:
		return 0.95
	default:
		return 0.0
	}
}

func statusLabel(stage genpipeline.Stage, status genpipeline.Status) string {
	switch status {
	case genpipeline.StatusQueued:
		return "queued"
	case genpipeline.StatusDone:
		return "done"
	case genpipeline.StatusError:
		return "error"
	case genpipeline.StatusWorking:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage genpipeline.Stage) string {
	switch stage {
	case genpipeline.StageLex:
		return "lexing"
	case genpipeline.StageParse:
		return "parsing"
	case genpipeline.StagePlan:
		return "planning"
	case genpipeline.StageWrite:
		return "writing"
	case genpipeline.StageCacheHit:
		return "cached"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "lexing", "parsing", "planning", "writing":
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

// ShouldRun decides whether the interactive progress UI should drive a
// generate run, per SPEC_FULL.md 4.K: more than one file, an interactive
// terminal, and not --quiet.
func ShouldRun(fileCount int, quiet, isTTY bool) bool {
	return fileCount > 1 && isTTY && !quiet
}
