package modkit

import "creatorscout/internal/modkit/httpkit"

// Built is the result of applying a module's options
type Built struct {
	Name   string
	Prefix string
	Mw     []Middleware
	Ports  any
}

// Build applies opts in order
// The middleware slice is copied so later edits by the caller do not leak in
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]Middleware(nil), b.Mw...)
	return b
}

// Base returns the routing half of a module that mounts register under the built prefix
func (b Built) Base(register func(httpkit.Router)) Base {
	return Base{name: b.Name, prefix: b.Prefix, mws: b.Mw, register: register}
}
