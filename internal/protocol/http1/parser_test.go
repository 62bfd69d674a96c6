package http1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/kv"
	"github.com/stretchr/testify/require"
)

type wantedRequest struct {
	Method  method.Method
	Path    string
	Version string
	Headers []kv.Pair
	Body    string
}

func parse(t *testing.T, raw string) wantedRequest {
	request, err := Parse([]byte(raw))
	require.NoError(t, err)

	return wantedRequest{
		Method:  request.Method,
		Path:    request.Path,
		Version: request.Version,
		Headers: request.Headers.Expose(),
		Body:    string(request.Body),
	}
}

func genHeader() (string, string) {
	return "X-" + uniuri.NewLen(16), uniuri.NewLen(32)
}

func TestParser(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		got := parse(t, "GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, wantedRequest{
			Method:  method.GET,
			Path:    "/",
			Version: "HTTP/1.1",
			Headers: nil,
			Body:    "",
		}, got)
	})

	t.Run("GET with headers", func(t *testing.T) {
		raw := "GET /user-agent HTTP/1.1\r\nHost: localhost:4221\r\nUser-Agent: curl/8.7.1\r\nAccept: */*\r\n\r\n"
		got := parse(t, raw)
		require.Equal(t, method.GET, got.Method)
		require.Equal(t, "/user-agent", got.Path)
		require.Equal(t, []kv.Pair{
			{"Host", "localhost:4221"},
			{"User-Agent", "curl/8.7.1"},
			{"Accept", "*/*"},
		}, got.Headers)
		require.Empty(t, got.Body)
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		request, err := Parse([]byte("GET / HTTP/1.1\r\nuSeR-aGeNt: foobar/1.2.3\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "foobar/1.2.3", request.Headers.Value("User-Agent"))
		require.Equal(t, "foobar/1.2.3", request.Headers.Folded().Value("user-agent"))
		// the original casing is preserved
		require.Equal(t, "uSeR-aGeNt", request.Headers.Expose()[0].Key)
	})

	t.Run("repeated header, last wins", func(t *testing.T) {
		got := parse(t, "GET / HTTP/1.1\r\nAccept: one\r\nHost: x\r\nAccept: two\r\n\r\n")
		require.Equal(t, []kv.Pair{
			{"Accept", "two"},
			{"Host", "x"},
		}, got.Headers)
	})

	t.Run("header value with colons", func(t *testing.T) {
		got := parse(t, "GET / HTTP/1.1\r\nHost: localhost: 4221\r\n\r\n")
		require.Equal(t, []kv.Pair{{"Host", "localhost: 4221"}}, got.Headers)
	})

	t.Run("POST with body", func(t *testing.T) {
		raw := "POST /files/a HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"
		got := parse(t, raw)
		require.Equal(t, method.POST, got.Method)
		require.Equal(t, "/files/a", got.Path)
		require.Equal(t, "hello", got.Body)
	})

	t.Run("body with CRLFs", func(t *testing.T) {
		got := parse(t, "POST /files/a HTTP/1.1\r\n\r\nfirst\r\n\r\nsecond\r\n")
		require.Equal(t, "first\r\n\r\nsecond\r\n", got.Body)
	})

	t.Run("body is not length-checked", func(t *testing.T) {
		got := parse(t, "POST /files/a HTTP/1.1\r\nContent-Length: 100\r\n\r\nshort")
		require.Equal(t, "short", got.Body)
	})

	t.Run("unknown method", func(t *testing.T) {
		request, err := Parse([]byte("BREW /pot HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, method.Unknown, request.Method)
		require.Equal(t, "BREW", request.RawMethod)
	})

	t.Run("path is not decoded", func(t *testing.T) {
		got := parse(t, "GET /echo/hello%20world?x=y#frag HTTP/1.1\r\n\r\n")
		require.Equal(t, "/echo/hello%20world?x=y#frag", got.Path)
	})

	t.Run("version is not validated", func(t *testing.T) {
		got := parse(t, "GET / HTTP/9.9\r\n\r\n")
		require.Equal(t, "HTTP/9.9", got.Version)
	})

	t.Run("many random headers", func(t *testing.T) {
		var (
			raw  strings.Builder
			want []kv.Pair
		)

		raw.WriteString("GET / HTTP/1.1\r\n")
		for i := 0; i < 50; i++ {
			key, value := genHeader()
			fmt.Fprintf(&raw, "%s: %s\r\n", key, value)
			want = append(want, kv.Pair{Key: key, Value: value})
		}
		raw.WriteString("\r\n")

		require.Equal(t, want, parse(t, raw.String()).Headers)
	})
}

func TestParserMalformed(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Raw  string
		Err  error
	}{
		{"empty", "", status.ErrNoHeadersEnd},
		{"no CRLF at all", "GET / HTTP/1.1", status.ErrNoHeadersEnd},
		{"no empty line", "GET / HTTP/1.1\r\n", status.ErrNoHeadersEnd},
		{"truncated headers", "GET / HTTP/1.1\r\nHost: localhost", status.ErrNoHeadersEnd},
		{"two tokens", "GET /\r\n\r\n", status.ErrBadRequestLine},
		{"one token", "GET\r\n\r\n", status.ErrBadRequestLine},
		{"four tokens", "GET / HTTP/1.1 extra\r\n\r\n", status.ErrBadRequestLine},
		{"double space", "GET  / HTTP/1.1\r\n\r\n", status.ErrBadRequestLine},
		{"path without slash", "GET echo HTTP/1.1\r\n\r\n", status.ErrBadRequestLine},
		{"leading CRLF", "\r\nGET / HTTP/1.1\r\n\r\n", status.ErrBadRequestLine},
		{"header without separator", "GET / HTTP/1.1\r\nHost:localhost\r\n\r\n", status.ErrBadHeader},
		{"header without value", "GET / HTTP/1.1\r\nHost\r\n\r\n", status.ErrBadHeader},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			request, err := Parse([]byte(tc.Raw))
			require.ErrorIs(t, err, tc.Err)
			require.Nil(t, request)
		})
	}
}
