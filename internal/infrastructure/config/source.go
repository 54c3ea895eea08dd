package config

import "sync"

// Source hands out the current table set. Reload swaps the whole set
// at once, so a caller always sees tables that validated together; a
// failed reload keeps the previous set. Worlds hold the snapshot they
// started with and are never touched by a reload.
type Source struct {
	loader *Loader

	mu  sync.RWMutex
	cfg *GameConfig
}

// NewSource loads the tables once and wraps them for later reloads.
func NewSource(loader *Loader) (*Source, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	return &Source{loader: loader, cfg: cfg}, nil
}

// Current returns the latest good table set.
func (s *Source) Current() *GameConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Reload re-reads every table and swaps the snapshot if all of them
// validate. On error the previous snapshot stays current.
func (s *Source) Reload() error {
	cfg, err := s.loader.LoadAll()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}
