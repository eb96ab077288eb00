// Package spathmust wraps the fallible operations of the spath package with panic-based error handling.
//
// It provides the same indexed access as spath.Path, but instead of returning errors,
// all functions panic on failure.
package spathmust

import (
	"github.com/Jumpaku/go-spath"
)

// Get returns the i-th segment of p.
//
// It panics with an error matching spath.ErrIndexOutOfRange if i is outside [0, p.Len()).
func Get(p spath.Path, i int) (segment string) {
	return must1(p.Get(i))
}

// Set replaces the i-th segment of p in place.
//
// It panics with an error matching spath.ErrIndexOutOfRange if i is outside [0, p.Len()),
// leaving p unchanged.
func Set(p *spath.Path, i int, value string) {
	must0(p.Set(i, value))
}

func must0(err error) {
	if err != nil {
		panic(err)
	}
}

func must1[T any](t T, err error) T {
	must0(err)
	return t
}
