package response

import (
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/kv"
)

// Fields are the raw values accumulated by the response builder. Zero Code means no code
// was set at all.
type Fields struct {
	Code    status.Code
	Headers *kv.Storage
	Body    []byte
}
