package template

import (
	"github.com/Yamlte/ExcelFilter/domain"
)

// HandlerFunc writes one value's text into the sheet according to a directive.
// It receives the fill target bound to the current sheet and value index.
type HandlerFunc func(t *Target, d domain.Directive, text string) error

// Registry holds directive kind → handler mappings.
type Registry struct {
	handlers map[domain.Kind]HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{handlers: make(map[domain.Kind]HandlerFunc)}
}

// Register adds a handler for the given kind, replacing any previous one.
func (r *Registry) Register(kind domain.Kind, handler HandlerFunc) {
	r.handlers[kind] = handler
}

// Process runs the handler registered for d.Kind.
// Returns false when no handler is registered for that kind.
func (r *Registry) Process(t *Target, d domain.Directive, text string) (bool, error) {
	h, ok := r.handlers[d.Kind]
	if !ok {
		return false, nil
	}

	if err := h(t, d, text); err != nil {
		return false, err
	}

	return true, nil
}
