package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/config"
	"taskpad/internal/tasklist"
)

func testKeys() config.Keymap {
	return config.Keymap{
		Quit:    "q",
		Add:     "a",
		Up:      "k",
		Down:    "j",
		Toggle:  " ",
		Delete:  "d",
		Edit:    "e",
		Confirm: "enter",
		Cancel:  "esc",
		Theme:   "t",
	}
}

func newTestModel(tasks ...tasklist.Task) Model {
	cfg := config.Config{Theme: config.ThemeDark, Keys: testKeys()}
	return New(cfg, tasklist.List{Tasks: tasks})
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	space     = tea.KeyMsg{Type: tea.KeySpace}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestAddFlow(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("a"), runes("Buy milk"), enter)

	if m.list.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", m.list.Len())
	}
	task := m.list.Tasks[0]
	if task.Title != "Buy milk" {
		t.Errorf("title: got %q, want %q", task.Title, "Buy milk")
	}
	if task.Done {
		t.Error("new task starts done")
	}
	if m.mode != modeList {
		t.Errorf("mode: got %d, want modeList", m.mode)
	}
	if m.status != "Added task" {
		t.Errorf("status: got %q", m.status)
	}
}

func TestAddRejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		typed string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m = press(t, m, runes("a"))
			if tt.typed != "" {
				m = press(t, m, runes(tt.typed))
			}
			m = press(t, m, enter)

			if m.list.Len() != 0 {
				t.Errorf("Len: got %d, want 0", m.list.Len())
			}
			if m.mode != modeAdd {
				t.Errorf("mode: got %d, want modeAdd", m.mode)
			}
			if m.status != "Title cannot be empty" {
				t.Errorf("status: got %q", m.status)
			}
		})
	}
}

func TestAddCancel(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("a"), runes("half typed"), esc)

	if m.list.Len() != 0 {
		t.Errorf("Len: got %d, want 0", m.list.Len())
	}
	if m.mode != modeList {
		t.Errorf("mode: got %d, want modeList", m.mode)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared: got %q", got)
	}
}

func TestToggleKey(t *testing.T) {
	m := newTestModel(
		tasklist.Task{ID: 1, Title: "first"},
		tasklist.Task{ID: 2, Title: "second"},
	)

	m = press(t, m, space)

	if !m.list.Tasks[0].Done {
		t.Error("first task not toggled")
	}
	if m.list.Tasks[1].Done {
		t.Error("second task toggled")
	}
	if m.cursor != 1 {
		t.Errorf("cursor: got %d, want 1", m.cursor)
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		m := newTestModel(
			tasklist.Task{ID: 1, Title: "first"},
			tasklist.Task{ID: 2, Title: "second"},
		)

		m = press(t, m, runes("d"), runes("y"))

		if m.list.Len() != 1 {
			t.Fatalf("Len: got %d, want 1", m.list.Len())
		}
		if _, ok := m.list.Find(1); ok {
			t.Error("task 1 still present")
		}
		if m.confirmDel {
			t.Error("confirmDel still set")
		}
	})

	t.Run("declined", func(t *testing.T) {
		m := newTestModel(tasklist.Task{ID: 1, Title: "first"})

		m = press(t, m, runes("d"), runes("n"))

		if m.list.Len() != 1 {
			t.Errorf("Len: got %d, want 1", m.list.Len())
		}
		if m.status != "Delete cancelled" {
			t.Errorf("status: got %q", m.status)
		}
	})
}

func TestEditFlow(t *testing.T) {
	m := newTestModel(tasklist.Task{ID: 7, Title: "draft", Done: true})

	m = press(t, m, runes("e"))
	if m.mode != modeEdit {
		t.Fatalf("mode: got %d, want modeEdit", m.mode)
	}
	if got := m.input.Value(); got != "draft" {
		t.Fatalf("prefill: got %q, want %q", got, "draft")
	}

	m = press(t, m, runes(" two"), enter)

	task, ok := m.list.Find(7)
	if !ok {
		t.Fatal("task 7 missing")
	}
	if task.Title != "draft two" {
		t.Errorf("title: got %q, want %q", task.Title, "draft two")
	}
	if !task.Done {
		t.Error("Done flag lost during edit")
	}
	if m.mode != modeList {
		t.Errorf("mode: got %d, want modeList", m.mode)
	}
}

func TestEditCancel(t *testing.T) {
	m := newTestModel(tasklist.Task{ID: 1, Title: "keep me"})

	m = press(t, m, runes("e"), runes(" not"), esc)

	task, _ := m.list.Find(1)
	if task.Title != "keep me" {
		t.Errorf("title: got %q, want %q", task.Title, "keep me")
	}
	if m.editID != 0 {
		t.Errorf("editID: got %d, want 0", m.editID)
	}
}

func TestEditRejectsEmptyTitle(t *testing.T) {
	m := newTestModel(tasklist.Task{ID: 1, Title: "ab"})

	m = press(t, m, runes("e"), backspace, backspace, enter)

	if m.mode != modeEdit {
		t.Errorf("mode: got %d, want modeEdit", m.mode)
	}
	if m.status != "Title cannot be empty" {
		t.Errorf("status: got %q", m.status)
	}
	task, _ := m.list.Find(1)
	if task.Title != "ab" {
		t.Errorf("title: got %q, want %q", task.Title, "ab")
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel()
	if m.theme.Name != config.ThemeDark {
		t.Fatalf("initial theme: got %q, want dark", m.theme.Name)
	}

	m = press(t, m, runes("t"))
	if m.theme.Name != config.ThemeLight {
		t.Errorf("after toggle: got %q, want light", m.theme.Name)
	}

	m = press(t, m, runes("t"))
	if m.theme.Name != config.ThemeDark {
		t.Errorf("after second toggle: got %q, want dark", m.theme.Name)
	}
}

func TestCursorClamping(t *testing.T) {
	m := newTestModel(
		tasklist.Task{ID: 1, Title: "first"},
		tasklist.Task{ID: 2, Title: "second"},
	)

	m = press(t, m, runes("j"), runes("j"), runes("j"))
	if m.cursor != 1 {
		t.Errorf("cursor after moving past end: got %d, want 1", m.cursor)
	}

	m = press(t, m, runes("k"), runes("k"), runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor after moving past start: got %d, want 0", m.cursor)
	}
}

func TestViewShowsCountsAndCheckboxes(t *testing.T) {
	m := newTestModel(
		tasklist.Task{ID: 1, Title: "active one"},
		tasklist.Task{ID: 2, Title: "done one", Done: true},
		tasklist.Task{ID: 3, Title: "active two"},
	)

	view := m.View()

	if !strings.Contains(view, "3 tasks • 2 active • 1 done") {
		t.Errorf("counts line missing from view:\n%s", view)
	}
	if !strings.Contains(view, "[x]") {
		t.Errorf("done checkbox missing from view:\n%s", view)
	}
	if !strings.Contains(view, "[ ]") {
		t.Errorf("open checkbox missing from view:\n%s", view)
	}
}

func TestViewEmptyList(t *testing.T) {
	m := newTestModel()
	if view := m.View(); !strings.Contains(view, "No tasks yet") {
		t.Errorf("empty hint missing from view:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(runes("q"))
	if _, ok := next.(Model); !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
}
