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

package cpu

import (
	"fmt"
	"strings"
)

// StackCapacity is the maximum number of return addresses that can be held by
// the stack.
const StackCapacity = 16

// Stack of return addresses. Bounded to StackCapacity entries.
type Stack struct {
	entries [StackCapacity]uint16
	depth   int
}

// Push a return address onto the stack. Returns false if the stack is full.
func (s *Stack) Push(address uint16) bool {
	if s.depth >= StackCapacity {
		return false
	}
	s.entries[s.depth] = address
	s.depth++
	return true
}

// Pop a return address from the stack. Returns false if the stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.entries[s.depth], true
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.depth = 0
}

func (s *Stack) String() string {
	b := strings.Builder{}
	b.WriteString("[")
	for i := 0; i < s.depth; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%#04x", s.entries[i]))
	}
	b.WriteString("]")
	return b.String()
}
