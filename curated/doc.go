// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
//
// Errors are created with the Errorf() function. It works like Errorf() in
// the fmt package except that the format string is remembered and used as
// the identity of the error. The Is() function compares an error against a
// pattern:
//
//	e := curated.Errorf("ppu: %v", err)
//
//	if curated.Is(e, "ppu: %v") {
//		...
//	}
//
// The Has() function is similar but looks for the pattern anywhere in the
// error chain, not just at the head. Sentinel patterns should be stored as
// const strings in the package that raises them.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. This means errors can be wrapped freely at every level of
// the call stack without the final message stuttering. Parts of a chain are
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// IsAny() distinguishes curated from uncurated errors. An uncurated error
// is unexpected by definition and is a good candidate for ending the
// program.
package curated
