package resilience

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager owns one Guard per operation name.
type Manager struct {
	guards map[string]*Guard
	mu     sync.RWMutex
	logger logrus.FieldLogger
}

func NewManager(logger logrus.FieldLogger) *Manager {
	return &Manager{
		guards: make(map[string]*Guard),
		logger: logger,
	}
}

// GetOrCreate returns the existing guard for name or creates one with cfg.
// cfg is ignored when the guard already exists.
func (m *Manager) GetOrCreate(name string, cfg Config) *Guard {
	m.mu.RLock()
	guard, exists := m.guards[name]
	m.mu.RUnlock()

	if exists {
		return guard
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if guard, exists = m.guards[name]; exists {
		return guard
	}

	guard = NewGuard(name, cfg, m.logger, nil)
	m.guards[name] = guard

	m.logger.Infof("Created guard for operation: %s", name)

	return guard
}

// States returns the breaker state of every guard.
func (m *Manager) States() map[string]State {
	m.mu.RLock()
	guards := make([]*Guard, 0, len(m.guards))
	for _, guard := range m.guards {
		guards = append(guards, guard)
	}
	m.mu.RUnlock()

	states := make(map[string]State, len(guards))
	for _, guard := range guards {
		states[guard.Name()] = guard.State()
	}
	return states
}

// Names returns the registered operation names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.guards))
	for name := range m.guards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsHealthy reports whether every breaker is closed.
func (m *Manager) IsHealthy() bool {
	for _, state := range m.States() {
		if state != StateClosed {
			return false
		}
	}
	return true
}
