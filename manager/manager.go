// Package manager is the mutation façade over a keybinding Config. All
// external mutation goes through it so the conflict index, category
// membership, dirty flag, and observer notifications stay consistent.
//
// The manager is not safe for concurrent mutation; callers must serialize
// mutating calls (single-writer discipline).
package manager

import (
	"fmt"
	"os"
	"path/filepath"

	"hyprbind/domain"
	"hyprbind/logging"
	"hyprbind/parser"
	"hyprbind/writer"
)

// Observer is invoked synchronously after every successful mutating
// operation, in subscription order, on the calling goroutine
type Observer func()

type subscription struct {
	id int
	fn Observer
}

// Manager mediates all load/save/mutate operations on a Config
type Manager struct {
	configPath string
	config     *domain.Config
	dirty      bool
	observers  []subscription
	nextObsID  int
}

// DefaultConfigPath returns ~/.config/hypr/config/keybinds.conf
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "hypr", "config", "keybinds.conf")
	}
	return filepath.Join(homeDir, ".config", "hypr", "config", "keybinds.conf")
}

// New creates a Manager for the given config path. An empty path selects the
// default location. Call Load before mutating.
func New(configPath string) *Manager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return &Manager{configPath: configPath}
}

// ConfigPath returns the path the manager loads from and saves to
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Config returns the currently loaded configuration, or nil before Load
func (m *Manager) Config() *domain.Config {
	return m.config
}

// Load parses the configured source and wholesale replaces the in-memory
// Config. A missing file yields an empty Config. Clears the dirty flag and
// notifies observers.
func (m *Manager) Load() (*domain.Config, error) {
	config, err := parser.ParseFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	m.config = config
	m.dirty = false
	logging.Logger.Info("Loaded config", "path", m.configPath, "bindings", config.BindingCount())
	m.notifyObservers()
	return config, nil
}

// Save serializes the Config and writes it atomically. An empty path saves to
// the load path. On success the dirty flag is cleared and observers are
// notified; on failure the destination is left untouched.
func (m *Manager) Save(path string) error {
	if m.config == nil {
		return fmt.Errorf("config not loaded")
	}
	if path == "" {
		path = m.configPath
	}
	if err := writer.WriteFile(m.config, path); err != nil {
		return err
	}
	m.dirty = false
	m.notifyObservers()
	return nil
}

// AddBinding inserts a binding unless its slot is occupied. On conflict the
// result carries the occupying binding and no state changes; the manager
// never silently overwrites. Resolution (replace, keep, duplicate) is the
// caller's policy, expressed as explicit remove-then-add.
func (m *Manager) AddBinding(b domain.Binding) domain.OperationResult {
	if m.config == nil {
		return domain.Failed("Config not loaded. Call Load first.")
	}

	if existing, ok := m.config.FindConflict(b); ok {
		logging.Logger.Debug("Binding conflict detected",
			"binding", b.DisplayName(), "existing", existing.DisplayName())
		return domain.Conflicted(
			fmt.Sprintf("Binding conflicts with %q", existing.DisplayName()),
			existing)
	}

	m.config.AddBinding(b)
	m.dirty = true
	m.notifyObservers()
	return domain.OK("Binding added")
}

// RemoveBinding removes the binding occupying b's slot
func (m *Manager) RemoveBinding(b domain.Binding) domain.OperationResult {
	if m.config == nil {
		return domain.Failed("Config not loaded. Call Load first.")
	}

	if !m.config.RemoveBinding(b) {
		return domain.Failed("Binding not found")
	}

	m.dirty = true
	m.notifyObservers()
	return domain.OK("Binding removed")
}

// UpdateBinding replaces oldBinding with newBinding. If the new binding
// collides with some other existing binding, the old one is re-inserted so
// the Config is never left missing a binding the caller did not intend to
// delete.
func (m *Manager) UpdateBinding(oldBinding, newBinding domain.Binding) domain.OperationResult {
	if m.config == nil {
		return domain.Failed("Config not loaded. Call Load first.")
	}

	if !m.config.RemoveBinding(oldBinding) {
		return domain.Failed("Binding not found")
	}

	if existing, ok := m.config.FindConflict(newBinding); ok {
		// Roll back so the update is all-or-nothing
		m.config.AddBinding(oldBinding)
		return domain.Conflicted(
			fmt.Sprintf("Update failed: binding conflicts with %q. Changes rolled back.",
				existing.DisplayName()),
			existing)
	}

	m.config.AddBinding(newBinding)
	m.dirty = true
	m.notifyObservers()
	return domain.OK("Binding updated")
}

// IsDirty reports whether unsaved mutations exist since the last Load or Save
func (m *Manager) IsDirty() bool {
	return m.dirty
}

// AddObserver subscribes a callback to change notifications and returns an
// id for RemoveObserver
func (m *Manager) AddObserver(fn Observer) int {
	m.nextObsID++
	m.observers = append(m.observers, subscription{id: m.nextObsID, fn: fn})
	return m.nextObsID
}

// RemoveObserver unsubscribes a previously added callback
func (m *Manager) RemoveObserver(id int) {
	for i := range m.observers {
		if m.observers[i].id == id {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// notifyObservers invokes every observer in subscription order. A panicking
// observer is recovered and logged so it cannot prevent later observers from
// running.
func (m *Manager) notifyObservers() {
	for _, sub := range m.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.Logger.Error("Observer panicked", "error", r)
				}
			}()
			sub.fn()
		}()
	}
}
