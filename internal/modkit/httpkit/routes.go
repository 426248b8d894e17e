package httpkit

import "net/http"

// APIPrefix is where every stage module is mounted
const APIPrefix = "/api/v1"

// MountUnder mounts a subrouter at prefix with mw applied to it alone
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the versioned API with the shared middleware stack
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIPrefix, mw, mount)
}
