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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestIdentity(t *testing.T) {
	e := curated.Errorf("test: %v", 10)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "test: %v"))
	test.ExpectedFailure(t, curated.Is(e, "wrong: %v"))

	// uncurated errors should never match
	f := errors.New("test: 10")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, "test: %v"))
}

func TestHas(t *testing.T) {
	e := curated.Errorf("inner: %v", 10)
	f := curated.Errorf("outer: %v", e)

	test.ExpectedSuccess(t, curated.Has(f, "outer: %v"))
	test.ExpectedSuccess(t, curated.Has(f, "inner: %v"))
	test.ExpectedFailure(t, curated.Is(f, "inner: %v"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("not yet implemented")))
	test.Equate(t, e.Error(), "error: not yet implemented")
}
