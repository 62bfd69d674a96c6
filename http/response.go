package http

import (
	"strconv"

	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/internal/response"
	"github.com/indigo-web/oneshot/kv"
	"github.com/indigo-web/utils/uf"
)

// why 4? The richest response here has just two headers, so a couple more are a generous
// reserve already.
const preallocRespHeaders = 4

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object. Unlike most of the frameworks,
// no status code is implied: it must be set explicitly via Code before Build is called.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, if there's no
// clear reason otherwise
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Headers: kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets a Response code. The reason phrase is derived from it at the moment of
// building.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Header sets the header value. Setting the same name again overwrites the value, keeping
// the header at its original position.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// ContentLength is a shortcut for the Content-Length header. It's never set implicitly.
func (r *Response) ContentLength(n int) *Response {
	return r.Header("Content-Length", strconv.Itoa(n))
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed, its code will be set and the body is left
// empty. Otherwise, the code defaults to status.InternalServerError (or the first custom code
// passed) and the error message is sent as a plain text body.
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	if http, ok := err.(status.HTTPError); ok {
		return r.Code(http.Code)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	msg := err.Error()

	return r.
		Code(c).
		Header("Content-Type", "text/plain").
		ContentLength(len(msg)).
		String(msg)
}

// Expose returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Expose() *response.Fields {
	return r.fields
}

// Build serializes the response into its wire form. It doesn't modify the builder, so
// calling it more than once yields identical results.
func (r *Response) Build() ([]byte, error) {
	return serialize(r.fields)
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error, code ...status.Code) *Response {
	return request.Respond().Error(err, code...)
}
