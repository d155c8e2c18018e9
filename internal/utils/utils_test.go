package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytes(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", HashBytes(nil))
	assert.Equal(t, HashBytes([]byte("[]")), HashBytes([]byte("[]")))
	assert.NotEqual(t, HashBytes([]byte("a")), HashBytes([]byte("b")))
}

func TestETagQuoted(t *testing.T) {
	tag := ETag([]byte("users"))
	assert.Equal(t, byte('"'), tag[0])
	assert.Equal(t, byte('"'), tag[len(tag)-1])
	assert.Len(t, tag, 34)
}
