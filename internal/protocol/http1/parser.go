package http1

import (
	"strings"

	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/utils/uf"
)

const crlf = "\r\n"

// Parse turns the data of a single read into a request. The data is expected to hold the
// whole request, as nothing is ever read to complete it: no Content-Length is consulted,
// and a request truncated by the read buffer is parsed as whatever fits in.
//
// The returned request references the data instead of copying it, so the data must not be
// reused while the request is alive.
func Parse(data []byte) (*http.Request, error) {
	request := http.NewRequest()
	raw := uf.B2S(data)

	requestLine, rest, found := strings.Cut(raw, crlf)
	if !found {
		return nil, status.ErrNoHeadersEnd
	}

	if err := parseRequestLine(request, requestLine); err != nil {
		return nil, err
	}

	for {
		var line string
		line, rest, found = strings.Cut(rest, crlf)
		if !found {
			return nil, status.ErrNoHeadersEnd
		}

		if len(line) == 0 {
			break
		}

		key, value, err := parseHeaderLine(line)
		if err != nil {
			return nil, err
		}

		request.Headers.Set(key, value)
	}

	// everything after the empty line is the body, CRLFs in it included
	request.Body = data[len(data)-len(rest):]

	return request, nil
}

// parseRequestLine expects exactly three tokens separated by a single space each.
func parseRequestLine(request *http.Request, line string) error {
	rawMethod, rest, found := strings.Cut(line, " ")
	if !found {
		return status.ErrBadRequestLine
	}

	path, version, found := strings.Cut(rest, " ")
	if !found || strings.IndexByte(version, ' ') != -1 {
		return status.ErrBadRequestLine
	}

	if len(path) == 0 || path[0] != '/' {
		return status.ErrBadRequestLine
	}

	request.Method = method.Parse(rawMethod)
	request.RawMethod = rawMethod
	request.Path = path
	request.Version = version

	return nil
}

// parseHeaderLine splits the line by the first colon followed by a space. Leading and
// trailing whitespaces of the value are kept as is.
func parseHeaderLine(line string) (key, value string, err error) {
	key, value, found := strings.Cut(line, ": ")
	if !found {
		return "", "", status.ErrBadHeader
	}

	return key, value, nil
}
