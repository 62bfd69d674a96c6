package inbuilt

import (
	"testing"

	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/stretchr/testify/require"
)

func getRequest(m method.Method, path string) *http.Request {
	request := http.NewRequest()
	request.Method, request.RawMethod, request.Path = m, m.String(), path

	return request
}

// tagged returns a handler responding with the given code and echoing the tail in the
// body, so the test can tell which rule was picked and what was captured.
func tagged(code status.Code) Handler {
	return func(request *http.Request, tail string) *http.Response {
		return http.Code(request, code).String(tail)
	}
}

func TestRouter(t *testing.T) {
	r := New().
		Get("/", tagged(status.OK)).
		Get("/echo/*", tagged(status.Accepted)).
		Get("/echo/exact", tagged(status.NoContent)).
		Get("/user-agent", tagged(status.ResetContent)).
		Post("/files/*", tagged(status.Created))

	for _, tc := range []struct {
		Name   string
		Method method.Method
		Path   string
		Code   status.Code
		Tail   string
	}{
		{"root", method.GET, "/", status.OK, ""},
		{"prefix", method.GET, "/echo/abc", status.Accepted, "abc"},
		{"prefix with slashes", method.GET, "/echo/a/b/c", status.Accepted, "a/b/c"},
		{"prefix with empty tail", method.GET, "/echo/", status.Accepted, ""},
		{"earlier prefix beats later exact", method.GET, "/echo/exact", status.Accepted, "exact"},
		{"exact", method.GET, "/user-agent", status.ResetContent, ""},
		{"exact doesn't match longer", method.GET, "/user-agent/", status.NotFound, ""},
		{"prefix requires the whole prefix", method.GET, "/echo", status.NotFound, ""},
		{"method mismatch", method.POST, "/", status.NotFound, ""},
		{"post prefix", method.POST, "/files/name", status.Created, "name"},
		{"unknown method", method.Unknown, "/", status.NotFound, ""},
		{"nothing", method.GET, "/nothing", status.NotFound, ""},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			resp := r.OnRequest(getRequest(tc.Method, tc.Path)).Expose()
			require.Equal(t, tc.Code, resp.Code)
			require.Equal(t, tc.Tail, string(resp.Body))
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		resp, err := New().OnRequest(getRequest(method.GET, "/")).Build()
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1 404 Not Found\r\n\r\n", string(resp))
	})

	t.Run("custom", func(t *testing.T) {
		r := New().NotFound(tagged(status.Gone))
		resp := r.OnRequest(getRequest(method.GET, "/"))
		require.Equal(t, status.Gone, resp.Expose().Code)
	})
}

func TestNilResponse(t *testing.T) {
	r := New().Get("/", func(*http.Request, string) *http.Response {
		return nil
	})

	resp := r.OnRequest(getRequest(method.GET, "/"))
	require.NotNil(t, resp)
	_, err := resp.Build()
	require.ErrorIs(t, err, http.ErrMissingStatus)
}

func TestMatcher(t *testing.T) {
	m := newMatcher("/files/*")
	require.Equal(t, "/files/*", m.String())
	tail, ok := m.Match("/files/a.txt")
	require.True(t, ok)
	require.Equal(t, "a.txt", tail)
	_, ok = m.Match("/file")
	require.False(t, ok)

	m = newMatcher("/")
	require.Equal(t, "/", m.String())
	_, ok = m.Match("/")
	require.True(t, ok)
	_, ok = m.Match("//")
	require.False(t, ok)
}
