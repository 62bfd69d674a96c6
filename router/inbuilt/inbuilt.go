package inbuilt

import (
	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/router"
)

var _ router.Router = new(Router)

// Handler receives the request and the tail of the path, captured by a wildcard pattern.
// For exact patterns the tail is always empty.
type Handler func(request *http.Request, tail string) *http.Response

type rule struct {
	method  method.Method
	matcher matcher
	handler Handler
}

// Router is a built-in implementation of router.Router interface. Rules are checked in the
// same order they were registered and the first one matching both the method and the path
// wins, even though some later one might be more specific. Requests matching no rule are
// passed to the not-found handler, which by default responds with a bare 404.
type Router struct {
	rules    []rule
	notFound Handler
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		notFound: NotFound,
	}
}

// Route registers a handler. Patterns are matched against the raw path exactly, unless they
// end with the Wildcard, which makes them match by prefix.
func (r *Router) Route(m method.Method, pattern string, handler Handler) *Router {
	r.rules = append(r.rules, rule{
		method:  m,
		matcher: newMatcher(pattern),
		handler: handler,
	})

	return r
}

// NotFound replaces the handler called when no rule matched.
func (r *Router) NotFound(handler Handler) *Router {
	r.notFound = handler
	return r
}

// OnRequest routes the request. The returned response is never nil.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	for _, rule := range r.rules {
		if rule.method != request.Method {
			continue
		}

		if tail, ok := rule.matcher.Match(request.Path); ok {
			return notNil(request, rule.handler(request, tail))
		}
	}

	return notNil(request, r.notFound(request, ""))
}

// NotFound is the default handler for unmatched requests. It responds with a 404 and
// nothing else: neither headers nor body.
func NotFound(request *http.Request, _ string) *http.Response {
	return http.Error(request, status.ErrNotFound)
}

func notNil(request *http.Request, response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	// the code stays unset, so building the response fails
	return http.Respond(request)
}
