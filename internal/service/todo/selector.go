package todo

import (
	"fmt"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// Selector maps storage modes to explicitly registered repositories.
// Backends are injected at startup; asking for an unregistered mode is a
// configuration problem surfaced as domain.ErrBackendUnavailable.
type Selector struct {
	def   domain.Mode
	repos map[domain.Mode]todoRepo
}

// NewSelector creates a Selector whose default mode governs requests that
// carry no explicit hint.
func NewSelector(def domain.Mode) *Selector {
	return &Selector{
		def:   domain.ResolveMode(string(def), domain.ModeMemory),
		repos: make(map[domain.Mode]todoRepo),
	}
}

// Register wires a repository to a mode. Registering the same mode twice
// replaces the previous repository.
func (s *Selector) Register(mode domain.Mode, repo todoRepo) {
	s.repos[mode] = repo
}

// Repo returns the repository serving the given mode.
func (s *Selector) Repo(mode domain.Mode) (todoRepo, error) {
	repo, ok := s.repos[mode]
	if !ok || repo == nil {
		return nil, fmt.Errorf("mode %s: %w", mode, domain.ErrBackendUnavailable)
	}
	return repo, nil
}

// Default returns the process-wide default mode.
func (s *Selector) Default() domain.Mode {
	return s.def
}
