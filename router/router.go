package router

import "github.com/indigo-web/oneshot/http"

// Router picks a response for the request. It must always return something, even when
// nothing matches: resolving unmatched requests is on the router, too.
type Router interface {
	OnRequest(request *http.Request) *http.Response
}
