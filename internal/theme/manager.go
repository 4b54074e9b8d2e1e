package theme

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Store persists the theme preference as a single key. The stored value is
// exactly "dark" or "light".
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStorePath returns the standard preference location,
// $HOME/.config/txcat/theme.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "txcat", "theme")
}

// Load returns the stored mode, or "" when nothing valid is stored.
func (s *Store) Load() string {
	if s.path == "" {
		return ""
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	mode := strings.TrimSpace(string(data))
	if mode != Dark && mode != Light {
		return ""
	}
	return mode
}

// Save writes the mode. Callers treat failures as best-effort.
func (s *Store) Save(mode string) error {
	if s.path == "" {
		return os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(mode+"\n"), 0o644)
}

// Manager owns the active visual mode and its persistence. Resolution order
// at startup: stored preference, then the terminal's dark-background signal,
// then light.
type Manager struct {
	store      *Store
	detectDark func() bool
	mode       string
}

// NewManager creates a manager over the given store.
func NewManager(store *Store) *Manager {
	return &Manager{
		store:      store,
		detectDark: lipgloss.HasDarkBackground,
		mode:       Light,
	}
}

// Init resolves the startup mode. It runs before any styled output so the
// first render already uses the right theme.
func (m *Manager) Init() string {
	if stored := m.store.Load(); stored != "" {
		m.mode = stored
		return m.mode
	}
	if m.detectDark() {
		m.mode = Dark
	} else {
		m.mode = Light
	}
	return m.mode
}

// Apply sets the mode and persists it. Storage failures are silently
// ignored beyond a debug log line.
func (m *Manager) Apply(mode string) Theme {
	if mode != Dark && mode != Light {
		mode = Light
	}
	m.mode = mode
	if err := m.store.Save(mode); err != nil {
		slog.Debug("theme preference not persisted", "error", err)
	}
	return GetTheme(m.mode)
}

// Toggle flips between the two modes and persists the result.
func (m *Manager) Toggle() Theme {
	if m.mode == Dark {
		return m.Apply(Light)
	}
	return m.Apply(Dark)
}

// Mode returns the active mode name.
func (m *Manager) Mode() string {
	return m.mode
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	return GetTheme(m.mode)
}
