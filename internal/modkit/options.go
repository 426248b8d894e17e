package modkit

// Option adjusts how Build assembles a module
// Later options win, so callers can override a module's defaults
type Option func(*Built)

// WithName sets the name used for the registry and the log field
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix sets the mount prefix under /api/v1
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends middleware applied to the module's routes only
func WithMiddlewares(mw ...Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module its upstream seams
// The module decides which type it accepts and ignores anything else
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}
