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

// Package logger is the central log repository for gopher8. Log entries are
// made with the Log() and Logf() functions. Every entry is given a tag which
// helps to identify the source of the entry. For example:
//
//	logger.Logf(logger.Allow, "cpu", "halted at %#04x", pc)
//
// The first argument to the log functions is an implementation of the
// Permission interface. The package level logger.Allow value always allows
// logging. Other implementations can be used to silence logging according to
// context.
//
// Consecutive entries with the same tag and detail are not repeated. Instead,
// the most recent entry is marked with a repeat count.
//
// The log has a maximum size. When the maximum is exceeded the oldest entries
// are discarded.
//
// Entries can be echoed to an io.Writer as they are made with the SetEcho()
// function.
package logger
