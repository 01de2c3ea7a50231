package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/todoswitch/pkg/client"
)

const requestTimeout = 5 * time.Second

// pollInterval is how often the list is refetched while a shared
// backend is selected, so edits made elsewhere show up without a manual
// refresh.
const pollInterval = 5 * time.Second

// todosMsg carries a fresh copy of the server's list.
type todosMsg []client.Todo

// writeAckMsg is sent when the server acknowledged a create or a text
// edit. The model answers it with a refetch.
type writeAckMsg struct{}

// toggledMsg carries the acknowledged row after a completed-flag flip;
// the model applies it to the mirror in place.
type toggledMsg struct{ todo client.Todo }

// deletedMsg carries the id of an acknowledged delete; the model drops
// the row from the mirror without refetching.
type deletedMsg struct{ id string }

type errMsg struct{ err error }

type pollMsg time.Time

func fetchTodos(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		todos, err := c.List(ctx)
		if err != nil {
			return errMsg{err}
		}
		return todosMsg(todos)
	}
}

func createTodo(c *client.Client, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := c.Create(ctx, client.Todo{Text: text}); err != nil {
			return errMsg{err}
		}
		return writeAckMsg{}
	}
}

func editTodo(c *client.Client, t client.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.Update(ctx, t); err != nil {
			return errMsg{err}
		}
		return writeAckMsg{}
	}
}

func toggleTodo(c *client.Client, t client.Todo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.Update(ctx, t); err != nil {
			return errMsg{err}
		}
		return toggledMsg{todo: t}
	}
}

func deleteTodo(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.Delete(ctx, id); err != nil {
			return errMsg{err}
		}
		return deletedMsg{id: id}
	}
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}
