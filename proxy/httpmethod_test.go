package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpMethod_String(t *testing.T) {
	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "HEAD", HEAD.String())
	assert.Equal(t, "POST", POST.String())
	assert.Equal(t, "PUT", PUT.String())
	assert.Equal(t, "DELETE", DELETE.String())
	assert.Equal(t, "CONNECT", CONNECT.String())
	assert.Equal(t, "OPTIONS", OPTIONS.String())
	assert.Equal(t, "TRACE", TRACE.String())
	assert.Equal(t, "PATCH", PATCH.String())
}

func TestHttpMethod_String_unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", HttpMethod(42).String())
	assert.Equal(t, "UNKNOWN", HttpMethod(-1).String())
}
