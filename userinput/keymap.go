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

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns.
const (
	InvalidKeypadKey = "userinput: invalid keypad key (%s) for host key (%s)"
)

// Keymap maps host key names to keypad keys. Key names are stored in upper
// case and lookups are case insensitive.
type Keymap map[string]uint8

// DefaultKeymap returns the conventional layout of the sixteen key keypad on
// the left hand side of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
func DefaultKeymap() Keymap {
	return Keymap{
		"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
		"Q": 0x04, "W": 0x05, "E": 0x06, "R": 0x0d,
		"A": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
		"Z": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,
	}
}

// NewKeymap creates a new Keymap from a map of host key names to hexadecimal
// strings. The strings can optionally be prefixed with "0x". Returns an error
// if any of the keypad values are not in the range 0 to F.
func NewKeymap(m map[string]string) (Keymap, error) {
	km := make(Keymap, len(m))
	for k, v := range m {
		s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v)), "0x")
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil || n > 0x0f {
			return nil, curated.Errorf(InvalidKeypadKey, v, k)
		}
		km[strings.ToUpper(k)] = uint8(n)
	}
	return km, nil
}

// Lookup returns the keypad key for the host key name.
func (km Keymap) Lookup(key string) (uint8, bool) {
	k, ok := km[strings.ToUpper(key)]
	return k, ok
}

func (km Keymap) String() string {
	keys := make([]string, 0, len(km))
	for k := range km {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(k)
		s.WriteString("=")
		s.WriteString(strings.ToUpper(strconv.FormatUint(uint64(km[k]), 16)))
	}
	return s.String()
}
