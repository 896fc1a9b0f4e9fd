package fn

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

type memoEntry struct {
	value any
	err   error
}

// Memoize caches the results of f by argument list. Arguments are keyed by a
// BLAKE2b-256 digest of their Go-syntax representation, so two calls with
// equal arguments share one result. The cache lives as long as the returned
// function and is never invalidated.
//
// The returned function is not safe for concurrent use.
func Memoize(f any) Func {
	cache := make(map[[blake2b.Size256]byte]memoEntry)
	return func(args ...any) (any, error) {
		key := digest(args)
		if e, ok := cache[key]; ok {
			return e.value, e.err
		}
		v, err := Invoke(f, args...)
		cache[key] = memoEntry{value: v, err: err}
		return v, err
	}
}

func digest(args []any) [blake2b.Size256]byte {
	var buf bytes.Buffer
	for _, a := range args {
		fmt.Fprintf(&buf, "%T:%#v\x00", a, a)
	}
	return blake2b.Sum256(buf.Bytes())
}
