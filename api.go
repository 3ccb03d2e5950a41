package xaction

// Typed is anything carrying an action tag. Action implements it; so can any
// message type a caller wants to feed into Matches.
type Typed interface {
	ActionType() string
}

// Descriptor describes a factory without its payload types.
type Descriptor interface {
	Type() string
	Shape() Shape
}

// Observer receives registry lifecycle events. Implementations should be non-blocking.
type Observer interface {
	OnEvent(e Event)
}

// API represents the complete registry surface for extensibility.
type API interface {
	Claim(tag string, shape Shape) error
	Release(tag string) bool
	Lookup(tag string) (Entry, bool)
	Entries() []Entry
	Len() int
	AddObserver(obs Observer)
	RemoveObserver(obs Observer)
}

var (
	_ API        = (*Registry)(nil)
	_ Descriptor = (*Factory)(nil)
	_ Descriptor = (*DataFactory[int])(nil)
	_ Descriptor = (*DataMetaFactory[int, int])(nil)
	_ Typed      = Action[None, None]{}
)
