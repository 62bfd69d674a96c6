package http

import (
	"strconv"

	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/internal/response"
)

const (
	protocol = "HTTP/1.1"
	crlf     = "\r\n"
)

func serialize(fields *response.Fields) ([]byte, error) {
	if fields.Code == 0 {
		return nil, ErrMissingStatus
	}

	phrase, ok := status.Text(fields.Code)
	if !ok {
		return nil, ErrUnknownStatus
	}

	buff := make([]byte, 0, estimateSize(fields))
	buff = appendStatusLine(buff, fields.Code, phrase)

	for _, header := range fields.Headers.Expose() {
		buff = appendHeader(buff, header)
	}

	buff = append(buff, crlf...)

	return append(buff, fields.Body...), nil
}

func appendStatusLine(buff []byte, code status.Code, phrase status.Status) []byte {
	buff = append(buff, protocol...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(code), 10)
	buff = append(buff, ' ')
	buff = append(buff, phrase...)

	return append(buff, crlf...)
}

// appendHeader writes a complete header field line including the trailing CRLF.
func appendHeader(buff []byte, header Header) []byte {
	buff = append(buff, header.Key...)
	buff = append(buff, ':', ' ')
	buff = append(buff, header.Value...)

	return append(buff, crlf...)
}

func estimateSize(fields *response.Fields) int {
	// status line: protocol, two spaces, 3 digits of code, some reasonable phrase and CRLF
	size := len(protocol) + 2 + 3 + 32 + len(crlf)

	for _, header := range fields.Headers.Expose() {
		size += len(header.Key) + len(": ") + len(header.Value) + len(crlf)
	}

	return size + len(crlf) + len(fields.Body)
}
