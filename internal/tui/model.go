package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rise/internal/engine"
	"rise/internal/storage"
	"rise/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile engine.ProfileView
	tasks   []storage.Task

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	profile engine.ProfileView
	tasks   []storage.Task
	err     error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.ListTasks(m.ctx, "")
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed: +%d XP (level %d → %d)", msg.res.XPGained, msg.res.LevelBefore, msg.res.LevelAfter)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.tasks) {
				t := m.tasks[m.selected]
				if t.Status == string(engine.StatusDone) {
					m.lastLog = "Already done."
					return m, nil
				}
				return m, m.completeCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s  %s",
		ui.Heading(ui.IconRise, "RISE"),
		ui.LabelValue("Level", m.profile.Level),
		ui.XPBar(m.profile.XP, engine.LevelThreshold))
	b.WriteString(header + "\n\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
	} else if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("No tasks yet. Run `rise onboard` to build your protocol.") + "\n")
	}

	for i, t := range m.tasks {
		line := fmt.Sprintf("%s %s–%s %s %s",
			ui.CategoryIcon(t.Category),
			t.Start.Format("15:04"),
			t.End.Format("15:04"),
			t.Title,
			ui.StatusText(t.Status))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · enter complete · r refresh · q quit") + "\n")
	return b.String()
}
