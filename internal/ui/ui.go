package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/config"
	"taskpad/internal/tasklist"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	cfg        config.Config
	list       tasklist.List
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	theme      Theme
	editID     int
	confirmDel bool
	pendingDel *tasklist.Task
	debug      bool
}

// New builds the model the program starts with.
func New(cfg config.Config, list tasklist.List) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		cfg:    cfg,
		list:   list,
		cursor: clampCursor(0, list.Len()),
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
		input:  ti,
		mode:   modeList,
		theme:  themeFor(cfg.Theme),
		debug:  cfg.DebugLog != "",
	}
}

func Run(cfg config.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "taskpad")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	program := tea.NewProgram(New(cfg, tasklist.Seed()))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeEdit:
		return m.updateEditMode(key, msg)
	default:
		return m.updateListMode(key)
	}
}

// dispatch replaces the list with the result of one action.
func (m *Model) dispatch(a tasklist.Action) {
	m.list = tasklist.Apply(m.list, a)
	if m.debug {
		log.Printf("action kind=%d id=%d title=%q tasks=%d", a.Kind, a.ID, a.Title, m.list.Len())
	}
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.dispatch(tasklist.Action{Kind: tasklist.ActionAdd, Title: title})
		m.cursor = clampCursor(m.list.Len()-1, m.list.Len())
		m.status = "Added task"
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.editID = 0
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.dispatch(tasklist.Action{Kind: tasklist.ActionUpdate, ID: m.editID, Title: title})
		m.status = "Updated task"
		m.editID = 0
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if m.list.Len() == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, m.list.Len())
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, m.list.Len())
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Task title"
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case m.cfg.Keys.Toggle:
		if m.list.Len() == 0 {
			return m, nil
		}
		task := m.list.Tasks[m.cursor]
		m.dispatch(tasklist.Action{Kind: tasklist.ActionToggle, ID: task.ID})
		m.cursor = clampCursor(m.cursor+1, m.list.Len())
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		if m.list.Len() == 0 {
			return m, nil
		}
		t := m.list.Tasks[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Title)
	case m.cfg.Keys.Edit:
		if m.list.Len() == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(m.list.Tasks[m.cursor])
	case m.cfg.Keys.Theme:
		if m.theme.Name == config.ThemeDark {
			m.theme = themeFor(config.ThemeLight)
		} else {
			m.theme = themeFor(config.ThemeDark)
		}
		m.status = "Theme: " + m.theme.Name
	}
	return m, nil
}

// startEdit switches the input into update mode, pre-filled with the
// targeted task's title.
func (m Model) startEdit(t tasklist.Task) (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.editID = t.ID
	m.input.Placeholder = "New title"
	m.input.SetValue(t.Title)
	m.input.CursorEnd()
	m.input.Focus()
	m.status = "Edit mode: change the title and press Enter"
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.dispatch(tasklist.Action{Kind: tasklist.ActionDelete, ID: m.pendingDel.ID})
		m.cursor = clampCursor(m.cursor, m.list.Len())
		m.status = "Deleted task"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Taskpad"))
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString("No tasks yet. Press 'a' to add one.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Counts.Render(renderCounts(m.list.Counts())))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("\nAdd Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("\nEdit Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.list.Tasks {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = m.theme.Cursor.Render(">")
		}

		checkbox := "[ ]"
		if t.Done {
			checkbox = "[x]"
		}

		title := m.theme.Task.Render(t.Title)
		if t.Done {
			title = m.theme.TaskDone.Render(t.Title)
		}

		b.WriteString(fmt.Sprintf("%s %s %s", cursor, checkbox, title))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCounts(c tasklist.Counts) string {
	return fmt.Sprintf("%d tasks • %d active • %d done", c.Total, c.Active, c.Done)
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s theme • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Edit, k.Theme, k.Quit)
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
