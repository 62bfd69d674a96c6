package httptest

import "github.com/indigo-web/oneshot/kv"

// Request describes a request to be rendered into its wire form.
type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers []kv.Pair
	Body    string
}

// Dump renders the request exactly as described: no headers are implied, so Content-Length
// must be passed explicitly if needed. Empty Proto defaults to HTTP/1.1.
func Dump(request Request) []byte {
	var buff []byte

	proto := request.Proto
	if len(proto) == 0 {
		proto = "HTTP/1.1"
	}

	buff = append(buff, request.Method...)
	buff = space(buff)
	buff = append(buff, request.Path...)
	buff = space(buff)
	buff = append(buff, proto...)
	buff = crlf(buff)

	for _, h := range request.Headers {
		buff = header(buff, h)
	}

	buff = crlf(buff)

	return append(buff, request.Body...)
}

func space(b []byte) []byte {
	return append(b, ' ')
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}

func header(b []byte, h kv.Pair) []byte {
	b = append(b, h.Key...)
	b = append(b, ':', ' ')
	b = append(b, h.Value...)

	return crlf(b)
}
