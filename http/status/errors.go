package status

// HTTPError is an error carrying the status code it must be answered with.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequestLine      = NewError(BadRequest, "malformed request line")
	ErrBadHeader           = NewError(BadRequest, "malformed header line")
	ErrNoHeadersEnd        = NewError(BadRequest, "headers block is not terminated by an empty line")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
