package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod(t *testing.T) {
	for _, method := range []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH} {
		assert.Equal(t, method, Parse(method.String()))
	}

	assert.Equal(t, Unknown, Parse("get"))
	assert.Equal(t, Unknown, Parse("BREW"))
	assert.Equal(t, Unknown, Parse(""))
	assert.Equal(t, "UNKNOWN", Method(200).String())
}
