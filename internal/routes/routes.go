// Package routes defines the endpoints of the server.
package routes

import (
	"github.com/indigo-web/oneshot/filestore"
	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/mime"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/router/inbuilt"
)

// New returns the router with every endpoint registered. Order matters: the first rule
// matching the method and the path wins.
func New(store filestore.Store) *inbuilt.Router {
	return inbuilt.New().
		Get("/", Index).
		Get("/echo/*", Echo).
		Get("/user-agent", UserAgent).
		Get("/files/*", ReadFile(store)).
		Post("/files/*", WriteFile(store))
}

// Index responds with a bare 200.
func Index(request *http.Request, _ string) *http.Response {
	return http.Code(request, status.OK)
}

// Echo responds with the captured tail of the path. It isn't decoded in any way.
func Echo(request *http.Request, tail string) *http.Response {
	return text(request, tail)
}

// UserAgent responds with the value of the User-Agent header, no matter how its name was
// cased by the client. Missing header results in an empty body, still with 200.
func UserAgent(request *http.Request, _ string) *http.Response {
	return text(request, request.Headers.Folded().Value("user-agent"))
}

// ReadFile responds with the content of the file named by the tail.
func ReadFile(store filestore.Store) inbuilt.Handler {
	return func(request *http.Request, name string) *http.Response {
		if len(name) == 0 {
			return http.Code(request, status.NotFound)
		}

		content, err := store.Read(name)
		if err != nil {
			return http.Error(request, err)
		}

		return request.Respond().
			Code(status.OK).
			Header("Content-Type", mime.OctetStream).
			ContentLength(len(content)).
			Bytes(content)
	}
}

// WriteFile stores the request body into the file named by the tail, overwriting it if it
// already exists.
func WriteFile(store filestore.Store) inbuilt.Handler {
	return func(request *http.Request, name string) *http.Response {
		if len(name) == 0 {
			return http.Code(request, status.NotFound)
		}

		if err := store.Write(name, request.Body); err != nil {
			return http.Error(request, err)
		}

		return http.Code(request, status.Created)
	}
}

func text(request *http.Request, body string) *http.Response {
	return request.Respond().
		Code(status.OK).
		Header("Content-Type", mime.Plain).
		ContentLength(len(body)).
		String(body)
}
