package xaction

import "sync/atomic"

// factory is the single runtime behind every factory type. The type parameters
// only fix the static signature of Make; build never branches on them.
type factory[D, M any] struct {
	tag    string
	shape  Shape
	action atomic.Pointer[Action[D, M]]
}

func (f *factory[D, M]) init(tag string, shape Shape) {
	f.tag = tag
	f.shape = shape
	f.action.Store(&Action[D, M]{Type: tag})
}

// build stamps the tag and attaches whatever the caller supplied. Meta only
// attaches together with a payload. The cached example is refreshed only when
// a payload is present.
func (f *factory[D, M]) build(data D, meta M) Action[D, M] {
	if isZero(data) {
		return Action[D, M]{Type: f.tag}
	}
	a := Action[D, M]{Type: f.tag, Data: data}
	if !isZero(meta) {
		a.Meta = meta
	}
	f.action.Store(&a)
	return a
}

// Type returns the tag stamped on every produced action.
func (f *factory[D, M]) Type() string { return f.tag }

// Shape returns the call signature this factory exposes.
func (f *factory[D, M]) Shape() Shape { return f.shape }

// Matches reports whether candidate carries this factory's tag. Payloads are
// not inspected.
func (f *factory[D, M]) Matches(candidate Typed) bool {
	if candidate == nil {
		return false
	}
	return candidate.ActionType() == f.tag
}

// Match narrows v to this factory's action type. It succeeds when v is an
// Action[D, M] (or a non-nil pointer to one) carrying this factory's tag.
func (f *factory[D, M]) Match(v any) (Action[D, M], bool) {
	switch a := v.(type) {
	case Action[D, M]:
		if a.Type == f.tag {
			return a, true
		}
	case *Action[D, M]:
		if a != nil && a.Type == f.tag {
			return *a, true
		}
	}
	return Action[D, M]{}, false
}

// Action returns the cached example: the bare tagged action until the first
// call with a payload, then the most recent payload-bearing result. Calls
// without a payload leave it untouched.
func (f *factory[D, M]) Action() Action[D, M] {
	return *f.action.Load()
}

// Factory builds actions that carry only a tag.
type Factory struct {
	factory[None, None]
}

// New returns a factory for tag. The tag is not validated; uniqueness is up to
// the caller (see Registry).
func New(tag string) *Factory {
	f := &Factory{}
	f.init(tag, ShapeBare)
	return f
}

// Make returns {Type: tag}.
func (f *Factory) Make() Action[None, None] {
	return f.build(None{}, None{})
}

// DataFactory builds actions with an optional payload of type D.
type DataFactory[D any] struct {
	factory[D, None]
}

// NewData returns a factory for tag whose actions carry a D payload.
func NewData[D any](tag string) *DataFactory[D] {
	f := &DataFactory[D]{}
	f.init(tag, ShapeData)
	return f
}

// Make returns {Type: tag, Data: data}, or {Type: tag} when data is the zero value.
func (f *DataFactory[D]) Make(data D) Action[D, None] {
	return f.build(data, None{})
}

// DataMetaFactory builds actions with an optional payload D and metadata M.
type DataMetaFactory[D, M any] struct {
	factory[D, M]
}

// NewDataMeta returns a factory for tag whose actions carry a D payload and M metadata.
func NewDataMeta[D, M any](tag string) *DataMetaFactory[D, M] {
	f := &DataMetaFactory[D, M]{}
	f.init(tag, ShapeDataMeta)
	return f
}

// Make returns {Type: tag, Data: data, Meta: meta}. A zero meta is dropped; a
// zero data drops both, so Meta never appears on its own.
func (f *DataMetaFactory[D, M]) Make(data D, meta M) Action[D, M] {
	return f.build(data, meta)
}
