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

package cartridgeloader_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestLoadFromData(t *testing.T) {
	cl := cartridgeloader.Loader{Data: []uint8{0x01, 0x02, 0x03}}

	data, err := cl.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(data), 3)

	// hash of the data recorded during load
	test.Equate(t, cl.Hash, "7037807198c22a7d2b0807371d763779a84fdfcf")
}

func TestHashValidation(t *testing.T) {
	cl := cartridgeloader.Loader{
		Data: []uint8{0x01, 0x02, 0x03},
		Hash: "0000000000000000000000000000000000000000",
	}

	_, err := cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.HashMismatch))
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader("no such file.nes")

	_, err := cl.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cartridgeloader.LoaderError))
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("cart.nes")
	test.Equate(t, cl.ShortName(), "cart.nes")

	cl = cartridgeloader.NewLoader("/a/very/long/path/to/a/deeply/nested/cartridge/file.nes")
	test.Equate(t, len(cl.ShortName()), 32)
}
