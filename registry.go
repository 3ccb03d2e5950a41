package xaction

import (
	"sort"
	"sync"
	"time"

	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// Entry is a claimed tag.
type Entry struct {
	Tag          string
	Shape        Shape
	RegisteredAt time.Time
}

// Registry tracks which tags are in use so collisions between independently
// defined factories surface at start-up. Factories built with New, NewData and
// NewDataMeta never consult it.
type Registry struct {
	cfg    Config
	clock  xclock.Clock
	logger *xlog.Logger

	mu      sync.RWMutex
	entries map[string]Entry

	observersMu sync.RWMutex
	observers   []Observer
}

// Claim records tag under shape.
//
// An already claimed tag fails with ErrDuplicateTag in strict mode; otherwise a
// Duplicate event is emitted and the first claim is kept.
func (r *Registry) Claim(tag string, shape Shape) error {
	if tag == "" {
		r.notify(Event{Type: Rejected, Shape: shape, At: r.clock.Now(), Err: ErrEmptyTag})
		return ErrEmptyTag
	}

	r.mu.Lock()
	if prev, ok := r.entries[tag]; ok {
		r.mu.Unlock()
		dup := ErrDuplicateTag{Tag: tag, Shape: prev.Shape}
		if r.cfg.Strict {
			r.notify(Event{Type: Rejected, Tag: tag, Shape: shape, At: r.clock.Now(), Err: dup})
			return dup
		}
		r.notify(Event{Type: Duplicate, Tag: tag, Shape: shape, At: r.clock.Now(), Err: dup})
		return nil
	}
	if r.cfg.MaxTags > 0 && len(r.entries) >= r.cfg.MaxTags {
		r.mu.Unlock()
		r.notify(Event{Type: Rejected, Tag: tag, Shape: shape, At: r.clock.Now(), Err: ErrRegistryFull})
		return ErrRegistryFull
	}
	e := Entry{Tag: tag, Shape: shape, RegisteredAt: r.clock.Now()}
	r.entries[tag] = e
	r.mu.Unlock()

	r.notify(Event{Type: Registered, Tag: tag, Shape: shape, At: e.RegisteredAt})
	return nil
}

// Release forgets tag. It reports whether the tag was claimed.
func (r *Registry) Release(tag string) bool {
	r.mu.Lock()
	e, ok := r.entries[tag]
	if ok {
		delete(r.entries, tag)
	}
	r.mu.Unlock()

	if ok {
		r.notify(Event{Type: Released, Tag: tag, Shape: e.Shape, At: r.clock.Now()})
	}
	return ok
}

// Lookup returns the entry for tag.
func (r *Registry) Lookup(tag string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[tag]
	return e, ok
}

// Entries returns all claimed tags sorted by tag.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Len returns the number of claimed tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// AddObserver registers an observer (thread-safe).
func (r *Registry) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	r.observersMu.Lock()
	r.observers = append(r.observers, obs)
	r.observersMu.Unlock()
}

// RemoveObserver removes the first observer equal to obs. Observers whose
// dynamic value cannot be compared (e.g. ObserverFunc, or a struct holding one)
// never match and stay attached.
func (r *Registry) RemoveObserver(obs Observer) {
	if obs == nil {
		return
	}
	r.observersMu.Lock()
	defer r.observersMu.Unlock()

	for i, o := range r.observers {
		if sameObserver(o, obs) {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			break
		}
	}
}

// sameObserver compares two observers, treating a comparison that panics on
// uncomparable dynamic values as unequal.
func sameObserver(a, b Observer) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// notify dispatches synchronously; a panicking observer does not stop the others.
func (r *Registry) notify(e Event) {
	r.observersMu.RLock()
	obs := make([]Observer, len(r.observers))
	copy(obs, r.observers)
	r.observersMu.RUnlock()

	for _, o := range obs {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Warn().Str("tag", e.Tag).Msg("xaction: observer panic (recovered)")
				}
			}()
			o.OnEvent(e)
		}()
	}
}

// Register builds a tag-only factory and claims its tag in r.
func Register(r *Registry, tag string) (*Factory, error) {
	return claim(r, New(tag))
}

// RegisterData builds a payload factory and claims its tag in r.
func RegisterData[D any](r *Registry, tag string) (*DataFactory[D], error) {
	return claim(r, NewData[D](tag))
}

// RegisterDataMeta builds a payload+metadata factory and claims its tag in r.
func RegisterDataMeta[D, M any](r *Registry, tag string) (*DataMetaFactory[D, M], error) {
	return claim(r, NewDataMeta[D, M](tag))
}

func claim[F Descriptor](r *Registry, f F) (F, error) {
	if err := r.Claim(f.Type(), f.Shape()); err != nil {
		var zero F
		return zero, err
	}
	return f, nil
}
