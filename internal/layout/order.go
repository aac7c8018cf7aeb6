package layout

import (
	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Manager is the only component allowed to mutate the card order.
type Manager struct {
	store *store.Store
	order []CardID
}

// NewManager loads the persisted order, falling back to the default when
// storage is absent, corrupt, or not an array of known-shaped strings, and
// persists whatever it settled on.
func NewManager(s *store.Store) *Manager {
	m := &Manager{store: s}
	var raw []string
	if s.Get(config.KeyCardOrder, &raw) && validOrder(raw) {
		m.order = make([]CardID, len(raw))
		for i, id := range raw {
			m.order[i] = CardID(id)
		}
	} else {
		m.order = DefaultOrder()
	}
	m.persist()
	return m
}

// validOrder requires a non-empty list of non-empty, duplicate-free
// strings. Unknown ids are kept (they render as no-ops) so that orders
// written by newer versions survive a downgrade.
func validOrder(raw []string) bool {
	if len(raw) == 0 {
		return false
	}
	seen := make(map[string]bool, len(raw))
	for _, id := range raw {
		if id == "" || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// Order returns a copy of the current order.
func (m *Manager) Order() []CardID {
	out := make([]CardID, len(m.order))
	copy(out, m.order)
	return out
}

// Move removes active from its current index and reinserts it at the index
// occupied by over, shifting intervening cards by one. The order is
// unchanged when active == over or either id is absent. The result is
// always a permutation of the input and is persisted before returning.
func (m *Manager) Move(active, over CardID) []CardID {
	if active == over {
		return m.Order()
	}
	oldIdx := m.indexOf(active)
	newIdx := m.indexOf(over)
	if oldIdx < 0 || newIdx < 0 {
		return m.Order()
	}

	next := make([]CardID, 0, len(m.order))
	next = append(next, m.order[:oldIdx]...)
	next = append(next, m.order[oldIdx+1:]...)
	next = append(next[:newIdx], append([]CardID{active}, next[newIdx:]...)...)

	m.order = next
	m.persist()
	return m.Order()
}

func (m *Manager) indexOf(id CardID) int {
	for i, c := range m.order {
		if c == id {
			return i
		}
	}
	return -1
}

func (m *Manager) persist() {
	raw := make([]string, len(m.order))
	for i, id := range m.order {
		raw[i] = string(id)
	}
	util.LogError("layout: persist order", m.store.Set(config.KeyCardOrder, raw))
}
