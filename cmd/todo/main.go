// Command todo is the interactive terminal client for the todo server.
//
// Flags:
//
//	--server  base URL of the server (overrides the saved preference)
//	--mode    storage mode to pin requests to (memory, supabase, postgres;
//	          empty means the server's default)
//
// The chosen server and mode are persisted to the user config directory
// and restored on the next run.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/todoswitch/internal/tui"
	"github.com/mpetrenko/todoswitch/pkg/client"
)

func main() {
	serverFlag := flag.String("server", "", "server base URL")
	modeFlag := flag.String("mode", "", "storage mode (memory, supabase, postgres)")
	flag.Parse()

	prefs, err := tui.LoadPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load preferences: %v\n", err)
	}
	if *serverFlag != "" {
		prefs.ServerURL = *serverFlag
	}
	if *modeFlag != "" {
		prefs.Mode = *modeFlag
	}

	c := client.New(prefs.ServerURL, client.WithMode(prefs.Mode))

	p := tea.NewProgram(tui.New(c, prefs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
