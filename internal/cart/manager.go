package cart

import "sync"

// Manager owns one cart per session id. Carts are created lazily on first
// access and dropped when the session ends.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
	mode  CountMode
}

// NewManager creates a Manager whose carts use the given count mode.
func NewManager(mode CountMode) *Manager {
	return &Manager{
		carts: make(map[string]*Cart),
		mode:  mode,
	}
}

// Get returns the cart for the session, creating it on first use.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.RLock()
	c, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c = New(m.mode)
	m.carts[sessionID] = c
	return c
}

// End drops the session's cart.
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
