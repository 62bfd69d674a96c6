package http

import (
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single HTTP request. It is built once per connection by the parser
// and must not be modified afterwards.
type Request struct {
	// Method is an enum representing the request method. Tokens outside the known set are
	// represented as method.Unknown, while the original token is kept in RawMethod.
	Method    method.Method
	RawMethod string
	// Path is the raw request-target. It is never decoded, so percent-encoded sequences and
	// the query are kept as is.
	Path string
	// Version is the protocol token exactly as received. It isn't validated.
	Version string
	// Headers holds non-normalized header pairs. Repeated names are collapsed, the last value
	// wins. Use Headers.Folded() for a lower-cased view.
	Headers Headers
	// Body is whatever followed the headers block within the same read.
	Body []byte
}

// NewRequest returns an empty request with initialized headers.
func NewRequest() *Request {
	return &Request{
		Method:  method.Unknown,
		Headers: kv.New(),
	}
}

// String renders the request in a short form, suitable for logs.
func (r *Request) String() string {
	return "[" + r.RawMethod + "] " + r.Path
}

// Respond returns a new response builder. It's a shortcut mostly for handlers.
func (r *Request) Respond() *Response {
	return NewResponse()
}
