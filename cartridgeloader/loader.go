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

// Package cartridgeloader is the file-side half of cartridge loading.
// It deals with filenames, reading and hashing; interpreting the bytes
// as an iNES image is the job of the cartridge package in the hardware
// tree.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/curated"
)

// Error messages returned by the Load function.
const (
	LoaderError  = "cartridgeloader: %v"
	HashMismatch = "cartridgeloader: unexpected hash value"
)

// Loader specifies the cartridge file to attach to the console.
type Loader struct {
	// filename of the cartridge to load
	Filename string

	// expected hash of the loaded file. the empty string means the hash
	// is unknown and need not be validated. after a load operation the
	// field holds the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() return this
	// rather than rereading the file
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the CartridgeLoader's
// Filename field, suitable for window titles and log entries.
func (cl Loader) ShortName() string {
	if len(cl.Filename) > 32 {
		return "..." + cl.Filename[len(cl.Filename)-29:]
	}
	return cl.Filename
}

// Load the cartridge data and verify the hash.
func (cl *Loader) Load() ([]uint8, error) {
	if len(cl.Data) == 0 {
		data, err := os.ReadFile(cl.Filename)
		if err != nil {
			return nil, curated.Errorf(LoaderError, err)
		}
		cl.Data = data
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return nil, curated.Errorf(HashMismatch)
	}
	cl.Hash = hash

	return cl.Data, nil
}
