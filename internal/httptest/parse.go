package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/oneshot/kv"
)

// Response is a loosely parsed HTTP response, used to check what the server has written.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

func NewResponse() Response {
	return Response{
		Headers: kv.New(),
	}
}

// ParseResponse parses a complete response. Headers are kept in the same order they were
// received, including duplicates. When Content-Length is presented, the body must match it
// exactly, otherwise everything after the headers block is the body.
func ParseResponse(raw string) (response Response, err error) {
	var found bool
	response = NewResponse()

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking status")
	}

	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: response line isn't terminated")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", headerLine)
		}
		if len(headerLine) == 0 {
			break
		}

		key, value, ok := strings.Cut(headerLine, ": ")
		if !ok {
			return response, fmt.Errorf("bad header %q: no value", headerLine)
		}

		response.Headers.Add(key, value)
	}

	response.Body = raw

	if cl, ok := response.Headers.Get("Content-Length"); ok {
		length, err := strconv.Atoi(cl)
		if err != nil {
			return response, fmt.Errorf("bad content-length %q: %w", cl, err)
		}

		if length != len(raw) {
			return response, fmt.Errorf("content-length is %d, but got %d bytes of body", length, len(raw))
		}
	}

	return response, nil
}
