// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestDefaultKeymap(t *testing.T) {
	km := userinput.DefaultKeymap()
	test.ExpectEquality(t, len(km), 16)

	// every keypad key is reachable exactly once
	var seen [16]int
	for _, v := range km {
		seen[v]++
	}
	for i, n := range seen {
		test.ExpectEquality(t, n, 1, i)
	}

	k, ok := km.Lookup("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x04))

	_, ok = km.Lookup("Space")
	test.ExpectFailure(t, ok)
}

func TestNewKeymap(t *testing.T) {
	km, err := userinput.NewKeymap(map[string]string{"Up": "0x5", "left": "a"})
	test.DemandSuccess(t, err)
	k, ok := km.Lookup("UP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x05))
	k, ok = km.Lookup("Left")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x0a))
	test.ExpectEquality(t, km.String(), "LEFT=A UP=5")

	_, err = userinput.NewKeymap(map[string]string{"Up": "10"})
	test.ExpectSuccess(t, curated.Is(err, userinput.InvalidKeypadKey))

	_, err = userinput.NewKeymap(map[string]string{"Up": "G"})
	test.ExpectFailure(t, err)
}

func TestQueue(t *testing.T) {
	var q userinput.Queue
	_, ok := q.PollEvent()
	test.ExpectFailure(t, ok)

	q.Push(userinput.EventKeyboard{Key: "Q", Down: true}, userinput.EventQuit{})
	test.ExpectEquality(t, q.Len(), 2)

	ev, ok := q.PollEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventKeyboard{Key: "Q", Down: true})

	ev, ok = q.PollEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[userinput.Event](t, ev, userinput.EventQuit{})
	test.ExpectEquality(t, q.Len(), 0)
}
