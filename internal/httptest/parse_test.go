package httptest

import (
	"testing"

	"github.com/indigo-web/oneshot/kv"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("no headers", func(t *testing.T) {
		resp, err := ParseResponse("HTTP/1.1 404 Not Found\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", resp.Proto)
		require.Equal(t, 404, resp.Code)
		require.Equal(t, "Not Found", resp.Status)
		require.Empty(t, resp.Headers.Expose())
		require.Empty(t, resp.Body)
	})

	t.Run("headers and body", func(t *testing.T) {
		resp, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc")
		require.NoError(t, err)
		require.Equal(t, []kv.Pair{
			{"Content-Type", "text/plain"},
			{"Content-Length", "3"},
		}, resp.Headers.Expose())
		require.Equal(t, "abc", resp.Body)
	})

	t.Run("content-length mismatch", func(t *testing.T) {
		_, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nabc")
		require.Error(t, err)
	})

	t.Run("unterminated headers", func(t *testing.T) {
		_, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Length: 5")
		require.Error(t, err)
	})
}

func TestDump(t *testing.T) {
	raw := Dump(Request{
		Method:  "POST",
		Path:    "/files/a",
		Headers: []kv.Pair{{"Content-Length", "5"}},
		Body:    "hello",
	})

	require.Equal(t, "POST /files/a HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello", string(raw))
}
