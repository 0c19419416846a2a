package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns.
const (
	WrongGoroutine = "assert: wrong goroutine (%d, expected %d)"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleGoroutine checks that a type is only ever used from one goroutine. The
// goroutine is the one that first calls Check(). The zero value is ready to use.
type SingleGoroutine struct {
	id atomic.Uint64
}

// Check returns an error if the calling goroutine is not the goroutine that
// first called Check().
func (g *SingleGoroutine) Check() error {
	id := GetGoRoutineID()
	if g.id.CompareAndSwap(0, id) {
		return nil
	}
	if expected := g.id.Load(); expected != id {
		return curated.Errorf(WrongGoroutine, id, expected)
	}
	return nil
}

// Release forgets the goroutine. The next call to Check() will claim the
// calling goroutine.
func (g *SingleGoroutine) Release() {
	g.id.Store(0)
}
