package dlist

// Available deque backends.
const (
	// Linked backend stores every element in its own heap allocated node.
	Linked = "linked"
	// Arena backend stores elements in a single slice with index links.
	Arena = "arena"
)

// Option is a deque configuration option.
type Option interface {
	apply(*dequeOptions)
}

type dequeOptions struct {
	backend  string
	capacity int
}

func newDefaultDequeOptions() dequeOptions {
	return dequeOptions{
		backend:  Linked,
		capacity: 0,
	}
}

// WithBackend option configures the deque with specified backend.
//
// The zero value configures the Linked backend.
func WithBackend(backend string) Option {
	return funcOption(func(opts *dequeOptions) {
		switch backend {
		case "":
			opts.backend = Linked

		case Linked, Arena:
			opts.backend = backend

		default:
			panic("dlist: invalid backend '" + backend + "'")
		}
	})
}

// WithCapacity option preallocates storage for capacity elements.
//
// Only the Arena backend preallocates. The zero value configures no preallocation.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *dequeOptions) {
		if capacity < 0 {
			panic("dlist: negative capacity")
		}
		opts.capacity = capacity
	})
}

type funcOption func(*dequeOptions)

func (o funcOption) apply(opts *dequeOptions) {
	o(opts)
}
