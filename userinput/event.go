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

package userinput

// Event represents all the different type of events that can occur in the GUI
// and which are of interest to the emulation.
type Event interface{}

// EventKeyboard is sent when a key on the host keyboard is pressed or
// released. The Key field is the name of the key.
type EventKeyboard struct {
	Key  string
	Down bool
}

// EventQuit is sent when the user has requested the end of the emulation. For
// example, by closing the window.
type EventQuit struct{}

// Source is implemented by anything that can provide user input events. The
// PollEvent() function should never block. The second return value is false if
// there is no event pending.
type Source interface {
	PollEvent() (Event, bool)
}

// Queue is a simple implementation of the Source interface. Events are
// returned by PollEvent() in the order they were pushed.
type Queue struct {
	events []Event
}

// Push adds events to the end of the queue.
func (q *Queue) Push(ev ...Event) {
	q.events = append(q.events, ev...)
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// PollEvent implements the Source interface.
func (q *Queue) PollEvent() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}
