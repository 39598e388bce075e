package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"hash"
	"sync"
)

// compareKey is a per-process random key. Secrets are compared through
// their HMAC under this key so the comparison time does not depend on the
// secrets' lengths or common prefix.
var compareKey = func() []byte {
	key := make([]byte, sha256.Size)
	_, _ = rand.Read(key)
	return key
}()

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances
// keyed with compareKey.
var hasherPool = sync.Pool{
	New: func() any {
		return hmac.New(sha256.New, compareKey)
	},
}

// SecureCompare reports whether a and b are equal in constant time with
// respect to their content and length.
//
// Example usage:
//
//	if !utils.SecureCompare(presented, item.ItemAuthToken()) {
//	    // 401
//	}
func SecureCompare(a, b string) bool {
	return hmac.Equal(mac([]byte(a)), mac([]byte(b)))
}

// mac computes an HMAC-SHA256 digest over data using a hasher pulled from
// the pool.
func mac(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
