package inbuilt

import "github.com/indigo-web/oneshot/http/method"

// Get is a shortcut for registering GET-requests.
func (r *Router) Get(pattern string, handler Handler) *Router {
	return r.Route(method.GET, pattern, handler)
}

// Post is a shortcut for registering POST-requests.
func (r *Router) Post(pattern string, handler Handler) *Router {
	return r.Route(method.POST, pattern, handler)
}
