// Package tui is the interactive terminal client. It keeps a local
// mirror of the server's list, applies acknowledged writes to the
// mirror, and polls for changes while a remote backend is selected.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/todoswitch/internal/domain"
	"github.com/mpetrenko/todoswitch/pkg/client"
)

// inputState says what the shared text input is currently used for.
type inputState int

const (
	inputNone inputState = iota
	inputAdd
	inputEdit
	inputSearch
)

// modeCycle is the order the "m" key steps through. The empty mode lets
// the server pick its configured default.
var modeCycle = []string{"", "memory", "supabase", "postgres"}

// Model is the root Bubble Tea model.
type Model struct {
	client *client.Client
	prefs  Prefs

	todos  []client.Todo
	cursor int

	input     textinput.Model
	state     inputState
	editingID string
	search    string

	warn    string
	loading bool
	width   int
	height  int
}

// New creates the root model over an API client.
func New(c *client.Client, prefs Prefs) Model {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 40

	return Model{
		client:  c,
		prefs:   prefs,
		input:   ti,
		loading: true,
	}
}

// Init fetches the initial list and starts polling when the selected
// backend is remote.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchTodos(m.client)}
	if m.remoteMode() {
		cmds = append(cmds, pollTick())
	}
	return tea.Batch(cmds...)
}

// Update is the single message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todosMsg:
		m.todos = msg
		m.loading = false
		m.clampCursor()
		return m, nil

	case writeAckMsg:
		m.warn = ""
		return m, fetchTodos(m.client)

	case toggledMsg:
		for i := range m.todos {
			if m.todos[i].ID == msg.todo.ID {
				m.todos[i] = msg.todo
				break
			}
		}
		m.warn = ""
		return m, nil

	case deletedMsg:
		m.todos = slices.DeleteFunc(m.todos, func(t client.Todo) bool {
			return t.ID == msg.id
		})
		m.clampCursor()
		m.warn = ""
		return m, nil

	case errMsg:
		m.warn = msg.err.Error()
		m.loading = false
		return m, nil

	case pollMsg:
		if !m.remoteMode() {
			return m, nil
		}
		return m, tea.Batch(fetchTodos(m.client), pollTick())

	case tea.KeyMsg:
		if m.state != inputNone {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateInput handles keys while the shared text input is active.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.state == inputSearch {
			m.search = ""
		}
		m.resetInput()
		return m, nil

	case "enter":
		switch m.state {
		case inputAdd:
			return m.submitAdd()
		case inputEdit:
			return m.submitEdit()
		case inputSearch:
			// Keep the filter, leave input mode.
			m.search = m.input.Value()
			m.resetInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.state == inputSearch {
		m.search = m.input.Value()
	}
	return m, cmd
}

// updateList handles keys in list navigation mode.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil

	case "a":
		m.state = inputAdd
		m.input.Placeholder = "new todo"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.state = inputEdit
		m.editingID = t.ID
		m.input.Placeholder = ""
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case "/":
		m.state = inputSearch
		m.input.Placeholder = "search"
		m.input.SetValue(m.search)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case " ", "enter":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		t.Completed = !t.Completed
		return m, toggleTodo(m.client, t)

	case "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, deleteTodo(m.client, t.ID)

	case "m":
		return m.cycleMode()

	case "r":
		m.loading = true
		return m, fetchTodos(m.client)
	}

	return m, nil
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.warn = "todo text must not be empty"
		return m, nil
	}
	if m.hasDuplicate(text) {
		m.warn = "a todo with that text already exists"
		return m, nil
	}
	m.resetInput()
	return m, createTodo(m.client, text)
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.warn = "todo text must not be empty"
		return m, nil
	}

	var target *client.Todo
	for i := range m.todos {
		if m.todos[i].ID == m.editingID {
			target = &m.todos[i]
			break
		}
	}
	if target == nil {
		m.resetInput()
		return m, nil
	}
	if domain.NormalizeText(text) != domain.NormalizeText(target.Text) && m.hasDuplicate(text) {
		m.warn = "a todo with that text already exists"
		return m, nil
	}

	updated := *target
	updated.Text = text
	m.resetInput()
	return m, editTodo(m.client, updated)
}

func (m Model) cycleMode() (tea.Model, tea.Cmd) {
	current := 0
	for i, mode := range modeCycle {
		if mode == m.prefs.Mode {
			current = i
			break
		}
	}
	m.prefs.Mode = modeCycle[(current+1)%len(modeCycle)]
	m.client.SetMode(m.prefs.Mode)

	if err := SavePrefs(m.prefs); err != nil {
		m.warn = err.Error()
	}

	m.loading = true
	cmds := []tea.Cmd{fetchTodos(m.client)}
	if m.remoteMode() {
		cmds = append(cmds, pollTick())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resetInput() {
	m.state = inputNone
	m.editingID = ""
	m.input.Blur()
	m.input.SetValue("")
	m.warn = ""
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visible returns the todos matching the current search filter.
func (m Model) visible() []client.Todo {
	if m.search == "" {
		return m.todos
	}
	needle := domain.NormalizeText(m.search)
	var out []client.Todo
	for _, t := range m.todos {
		if strings.Contains(domain.NormalizeText(t.Text), needle) {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) selected() (client.Todo, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return client.Todo{}, false
	}
	return vis[m.cursor], true
}

// hasDuplicate reports whether a todo with the same normalized text is
// already mirrored locally.
func (m Model) hasDuplicate(text string) bool {
	needle := domain.NormalizeText(text)
	for _, t := range m.todos {
		if domain.NormalizeText(t.Text) == needle {
			return true
		}
	}
	return false
}

// remoteMode reports whether the pinned mode targets a shared backend
// worth polling.
func (m Model) remoteMode() bool {
	switch m.prefs.Mode {
	case "live", "supabase", "remote", "postgres", "pg":
		return true
	}
	return false
}

// View renders the list, the active input line, and the help footer.
func (m Model) View() string {
	var b strings.Builder

	done := 0
	for _, t := range m.todos {
		if t.Completed {
			done++
		}
	}

	modeLabel := m.prefs.Mode
	if modeLabel == "" {
		modeLabel = "server default"
	}

	b.WriteString(fmt.Sprintf("%s   %s %d  %s %d  %s\n\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(m.todos)-done,
		accentStyle.Render("["+modeLabel+"]"),
	))

	if m.loading {
		b.WriteString(mutedStyle.Render("loading…") + "\n")
	}

	vis := m.visible()
	if !m.loading && len(vis) == 0 {
		if m.search != "" {
			b.WriteString(mutedStyle.Render("no todos match the search") + "\n")
		} else {
			b.WriteString(mutedStyle.Render("nothing to do") + "\n")
		}
	}

	for i, t := range vis {
		box := mutedStyle.Render(boxUnchecked)
		text := t.Text
		if t.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, text))
	}

	if m.state != inputNone {
		prompt := map[inputState]string{
			inputAdd:    "add: ",
			inputEdit:   "edit: ",
			inputSearch: "search: ",
		}[m.state]
		b.WriteString("\n" + accentStyle.Render(prompt) + m.input.View() + "\n")
	} else if m.search != "" {
		b.WriteString("\n" + mutedStyle.Render("filter: "+m.search) + "\n")
	}

	if m.warn != "" {
		b.WriteString("\n" + errorStyle.Render("✖ "+m.warn) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("a add · e edit · d delete · space toggle · / search · m mode · r refresh · q quit"))
	return b.String()
}
