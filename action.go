package xaction

// None fills a payload or metadata slot that a factory does not use.
type None struct{}

// Action is the message a factory produces.
//
// A field is absent when it holds the zero value of its type: factories never
// store a zero payload, and never attach Meta without Data.
type Action[D, M any] struct {
	// Type is the tag stamped by the producing factory.
	Type string
	// Data is the optional payload.
	Data D
	// Meta is optional secondary content, only present alongside Data.
	Meta M
}

// ActionType returns the tag.
func (a Action[D, M]) ActionType() string { return a.Type }

// HasData reports whether a payload is attached.
func (a Action[D, M]) HasData() bool { return !isZero(a.Data) }

// HasMeta reports whether metadata is attached.
func (a Action[D, M]) HasMeta() bool { return !isZero(a.Meta) }

// Shape enumerates the call signatures a factory can expose.
type Shape string

const (
	ShapeBare     Shape = "bare"
	ShapeData     Shape = "data"
	ShapeDataMeta Shape = "data+meta"
)
