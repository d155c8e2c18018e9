package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// HashBytes returns the hex md5 of data.
func HashBytes(data []byte) string {
	h := md5.Sum(data)
	return hex.EncodeToString(h[:])
}

// ETag returns a strong HTTP entity tag for a response body.
func ETag(body []byte) string {
	return `"` + HashBytes(body) + `"`
}
