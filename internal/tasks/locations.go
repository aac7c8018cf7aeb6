package tasks

import (
	"strings"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

// Locations manages the registered weather targets and the current
// selection.
type Locations struct {
	store     *store.Store
	locations []models.Location
	currentID string
}

// NewLocations loads the persisted list, seeding the default cities on
// first run and migrating any of them that an older persisted list lacks.
func NewLocations(s *store.Store) *Locations {
	m := &Locations{store: s}
	s.Get(config.KeyLocations, &m.locations)

	migrated := false
	for _, def := range models.DefaultLocations() {
		if m.indexOf(def.ID) < 0 {
			m.locations = append(m.locations, def)
			migrated = true
		}
	}
	if migrated {
		m.persist()
	}

	m.currentID = store.GetOr(s, config.KeyCurrentLocation, "")
	if m.indexOf(m.currentID) < 0 {
		m.setCurrent(m.locations[0].ID)
	}
	return m
}

// List returns a copy of the registered locations.
func (m *Locations) List() []models.Location {
	out := make([]models.Location, len(m.locations))
	copy(out, m.locations)
	return out
}

// Current returns the selected location.
func (m *Locations) Current() models.Location {
	if idx := m.indexOf(m.currentID); idx >= 0 {
		return m.locations[idx]
	}
	return m.locations[0]
}

// Select makes id the current location. Unknown ids are ignored.
func (m *Locations) Select(id string) {
	if m.indexOf(id) < 0 {
		return
	}
	m.setCurrent(id)
}

// Add registers a location and selects it. Re-adding an existing id just
// selects it.
func (m *Locations) Add(loc models.Location) {
	if m.indexOf(loc.ID) < 0 {
		m.locations = append(m.locations, loc)
		m.persist()
	}
	m.setCurrent(loc.ID)
}

// AddPreset registers a catalogue city.
func (m *Locations) AddPreset(p models.LocationPreset) {
	m.Add(models.Location{
		ID: p.ID, Name: p.Name, Latitude: p.Latitude, Longitude: p.Longitude, Country: p.Country,
	})
}

// Remove deletes a location. The last remaining location cannot be
// removed; removing the current one falls back to the first remaining.
func (m *Locations) Remove(id string) {
	if len(m.locations) <= 1 {
		return
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return
	}
	m.locations = append(m.locations[:idx], m.locations[idx+1:]...)
	m.persist()
	if m.currentID == id {
		m.setCurrent(m.locations[0].ID)
	}
}

// AdoptDevicePosition replaces any prior device-derived entry with loc and
// selects it.
func (m *Locations) AdoptDevicePosition(loc models.Location) {
	kept := m.locations[:0]
	for _, l := range m.locations {
		if !l.IsCurrentLocation {
			kept = append(kept, l)
		}
	}
	m.locations = append(kept, loc)
	m.persist()
	m.setCurrent(loc.ID)
}

// SearchPresets filters the city catalogues by substring match on the
// Japanese or English name.
func SearchPresets(query string) []models.LocationPreset {
	query = strings.TrimSpace(query)
	all := models.AllCityPresets()
	if query == "" {
		return all
	}
	lower := strings.ToLower(query)
	var out []models.LocationPreset
	for _, p := range all {
		if strings.Contains(p.Name, query) || strings.Contains(strings.ToLower(p.NameEn), lower) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Locations) setCurrent(id string) {
	m.currentID = id
	util.LogError("tasks: persist current location", m.store.Set(config.KeyCurrentLocation, id))
}

func (m *Locations) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, l := range m.locations {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (m *Locations) persist() {
	util.LogError("tasks: persist locations", m.store.Set(config.KeyLocations, m.locations))
}
