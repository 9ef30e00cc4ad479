package pronto

import (
	"sort"
	"sync"
)

// DeviceFactory opens a Device for the given configuration.
type DeviceFactory func(cfg DeviceConfig) (Device, error)

// BackendEntry describes a registered device backend.
type BackendEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Native window systems use 100, offscreen backends use 10.
	Priority int

	// Factory opens devices.
	Factory DeviceFactory

	// Available reports whether the backend can run on this system.
	Available func() bool
}

// globalRegistry holds the backends registered by imported backend packages.
var globalRegistry = NewRegistry()

// Registry manages device backends.
//
// Backend packages register themselves from init, so importing one for its
// side effects is enough to make it selectable:
//
//	import _ "github.com/gogpu/pronto/backend/devdraw"
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*BackendEntry
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via RegisterBackend.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*BackendEntry)}
}

// RegisterBackend adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering an existing name replaces the previous entry.
func RegisterBackend(name string, priority int, factory DeviceFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// UnregisterBackend removes a backend from the global registry.
func UnregisterBackend(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns all registered backend names, highest priority first.
func Backends() []string {
	return globalRegistry.List()
}

// AvailableBackends returns the names of backends usable on this system,
// highest priority first.
func AvailableBackends() []string {
	return globalRegistry.Available()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory DeviceFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*BackendEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &BackendEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Get returns a copy of the entry registered under name.
func (r *Registry) Get(name string) (*BackendEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *e
	return &entryCopy, true
}

// List returns all backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns available backend names sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Open opens a device with the named backend, or with the best available
// backend when name is empty. When several backends are available they are
// tried in priority order and the last error is returned if all fail.
func (r *Registry) Open(name string, cfg DeviceConfig) (Device, error) {
	if name != "" {
		d, _, err := r.openByName(name, cfg)
		return d, err
	}

	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	var lastErr error
	for _, n := range names {
		d, e, err := r.openByName(n, cfg)
		if err == nil {
			Logger().Info("pronto: backend selected", "backend", n, "priority", e.Priority)
			return d, nil
		}
		Logger().Debug("pronto: backend failed, trying next", "backend", n, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

func (r *Registry) openByName(name string, cfg DeviceConfig) (Device, *BackendEntry, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, nil, &BackendNotFoundError{Name: name}
	}
	if !e.Available() {
		return nil, e, &BackendUnavailableError{Name: name}
	}
	d, err := e.Factory(cfg)
	return d, e, err
}

// sortedNames returns backend names sorted by priority (highest first),
// then by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*BackendEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
