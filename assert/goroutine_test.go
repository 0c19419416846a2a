package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-ch, id)
}

func TestSingleGoroutine(t *testing.T) {
	var g assert.SingleGoroutine
	test.ExpectSuccess(t, g.Check())
	test.ExpectSuccess(t, g.Check())

	ch := make(chan error)
	go func() {
		ch <- g.Check()
	}()
	err := <-ch
	test.ExpectSuccess(t, curated.Is(err, assert.WrongGoroutine))

	g.Release()
	go func() {
		ch <- g.Check()
	}()
	test.ExpectSuccess(t, <-ch)
}
