package xaction

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects events in order.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func newTestRegistry(t *testing.T, init func(b *RegistryBuilder)) (*Registry, *recorder) {
	t.Helper()
	rec := &recorder{}
	r, err := NewRegistry(func(b *RegistryBuilder) {
		b.WithObserver(rec)
		if init != nil {
			init(b)
		}
	})
	require.NoError(t, err)
	return r, rec
}

func TestRegistry_Claim(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	require.NoError(t, r.Claim("todo/add", ShapeData))

	e, ok := r.Lookup("todo/add")
	require.True(t, ok)
	assert.Equal(t, "todo/add", e.Tag)
	assert.Equal(t, ShapeData, e.Shape)
	assert.False(t, e.RegisteredAt.IsZero())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []EventType{Registered}, rec.types())
}

func TestRegistry_ClaimEmptyTag(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	err := r.Claim("", ShapeBare)

	assert.ErrorIs(t, err, ErrEmptyTag)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, []EventType{Rejected}, rec.types())
}

func TestRegistry_DuplicateLenient(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	require.NoError(t, r.Claim("todo/add", ShapeData))
	require.NoError(t, r.Claim("todo/add", ShapeBare))

	e, _ := r.Lookup("todo/add")
	assert.Equal(t, ShapeData, e.Shape, "first claim wins")
	assert.Equal(t, []EventType{Registered, Duplicate}, rec.types())

	var dup ErrDuplicateTag
	require.True(t, errors.As(rec.events[1].Err, &dup))
	assert.Equal(t, "todo/add", dup.Tag)
}

func TestRegistry_DuplicateStrict(t *testing.T) {
	r, rec := newTestRegistry(t, func(b *RegistryBuilder) { b.WithStrict(true) })

	require.NoError(t, r.Claim("todo/add", ShapeData))
	err := r.Claim("todo/add", ShapeDataMeta)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, ErrDuplicateTag{Tag: "todo/add", Shape: ShapeData}, err)
	assert.Contains(t, err.Error(), `"todo/add"`)
	assert.Equal(t, []EventType{Registered, Rejected}, rec.types())
}

func TestRegistry_MaxTags(t *testing.T) {
	r, _ := newTestRegistry(t, func(b *RegistryBuilder) { b.WithMaxTags(2) })

	require.NoError(t, r.Claim("a", ShapeBare))
	require.NoError(t, r.Claim("b", ShapeBare))
	assert.ErrorIs(t, r.Claim("c", ShapeBare), ErrRegistryFull)

	// Duplicates are judged before capacity.
	assert.NoError(t, r.Claim("a", ShapeBare))

	require.True(t, r.Release("a"))
	assert.NoError(t, r.Claim("c", ShapeBare))
}

func TestRegistry_Release(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	require.NoError(t, r.Claim("a", ShapeBare))
	assert.True(t, r.Release("a"))
	assert.False(t, r.Release("a"))

	_, ok := r.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, []EventType{Registered, Released}, rec.types())
}

func TestRegistry_EntriesSorted(t *testing.T) {
	r, _ := newTestRegistry(t, nil)

	for _, tag := range []string{"c", "a", "b"} {
		require.NoError(t, r.Claim(tag, ShapeBare))
	}

	var tags []string
	for _, e := range r.Entries() {
		tags = append(tags, e.Tag)
	}
	assert.Equal(t, []string{"a", "b", "c"}, tags)
}

func TestRegistry_RegisterHelpers(t *testing.T) {
	r, _ := newTestRegistry(t, func(b *RegistryBuilder) { b.WithStrict(true) })

	reset, err := Register(r, "counter/reset")
	require.NoError(t, err)
	add, err := RegisterData[int](r, "counter/add")
	require.NoError(t, err)
	tagged, err := RegisterDataMeta[int, string](r, "counter/add-tagged")
	require.NoError(t, err)

	assert.Equal(t, Action[None, None]{Type: "counter/reset"}, reset.Make())
	assert.Equal(t, Action[int, None]{Type: "counter/add", Data: 2}, add.Make(2))
	assert.Equal(t, Action[int, string]{Type: "counter/add-tagged", Data: 2, Meta: "ui"}, tagged.Make(2, "ui"))

	got := map[string]Shape{}
	for _, e := range r.Entries() {
		got[e.Tag] = e.Shape
	}
	assert.Equal(t, map[string]Shape{
		"counter/reset":      ShapeBare,
		"counter/add":        ShapeData,
		"counter/add-tagged": ShapeDataMeta,
	}, got)

	dup, err := RegisterData[string](r, "counter/add")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Nil(t, dup)
}

func TestRegistry_ObserverPanicIsContained(t *testing.T) {
	rec := &recorder{}
	r, err := NewRegistry(func(b *RegistryBuilder) {
		b.WithObserver(ObserverFunc(func(Event) { panic("boom") }), rec)
	})
	require.NoError(t, err)

	assert.NotPanics(t, func() { _ = r.Claim("a", ShapeBare) })
	assert.Equal(t, []EventType{Registered}, rec.types())
}

func TestRegistry_RemoveObserver(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	require.NoError(t, r.Claim("a", ShapeBare))
	r.RemoveObserver(rec)
	require.NoError(t, r.Claim("b", ShapeBare))

	assert.Equal(t, []EventType{Registered}, rec.types())

	// Function observers are not comparable and are left in place.
	assert.NotPanics(t, func() {
		fn := ObserverFunc(func(Event) {})
		r.AddObserver(fn)
		r.RemoveObserver(fn)
	})
}

// wrappedObserver is a comparable type whose dynamic contents may not be.
type wrappedObserver struct {
	Inner Observer
}

func (w wrappedObserver) OnEvent(e Event) { w.Inner.OnEvent(e) }

func TestRegistry_RemoveObserverHoldingFunc(t *testing.T) {
	r, rec := newTestRegistry(t, nil)

	var calls int
	w := wrappedObserver{Inner: ObserverFunc(func(Event) { calls++ })}
	r.AddObserver(w)

	// Both wrappers hold an ObserverFunc, so comparing them panics at runtime.
	assert.NotPanics(t, func() { r.RemoveObserver(wrappedObserver{Inner: ObserverFunc(func(Event) {})}) })
	assert.NotPanics(t, func() { r.RemoveObserver(rec) })

	require.NoError(t, r.Claim("a", ShapeBare))
	assert.Equal(t, 1, calls, "wrapper stays attached")
	assert.Empty(t, rec.types(), "comparable observer after it is still removed")
}

func TestRegistry_ConcurrentClaims(t *testing.T) {
	r, _ := newTestRegistry(t, func(b *RegistryBuilder) { b.WithStrict(true) })

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Claim("race", ShapeBare); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 15, failures)
}
