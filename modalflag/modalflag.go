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

// Package modalflag handles command line arguments that are divided into
// sub-modes (RUN, DEBUG, etc.), each sub-mode having its own set of flags.
// The stdlib flag package does the flag parsing underneath.
//
// The idiomatic sequence is:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	...
//	}
//
// with each mode handler calling NewMode(), adding its own flags and calling
// Parse() again for the remaining arguments.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes is a wrapper around the flag.FlagSet type, adding the idea of
// sub-modes. The Output field should be specified before calling Parse() or
// help messages will not be seen.
type Modes struct {
	// where to print output (help messages etc.)
	Output io.Writer

	// the underlying flagset. a new flagset is created on every call to
	// NewMode()
	flags *flag.FlagSet

	// the argument list as given to NewArgs(). argsIdx points to the first
	// argument not yet consumed by a sub-mode selection
	args    []string
	argsIdx int

	// the list of sub-modes given to AddSubModes(). the first entry is the
	// default sub-mode
	subModes []string

	// the series of sub-modes encountered during successive calls to
	// Parse(). never reset
	path []string
}

func (md *Modes) String() string {
	return strings.Join(md.path, "/")
}

// Mode returns the most recent mode to be encountered by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs initialises the Modes type with a list of arguments (from the
// command line most likely).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered to be part
// of a new sub-mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of sub-modes for the next call to Parse().
// The first sub-mode in the list is the default. Sub-mode comparison is
// case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added before
	// the call to Parse() then the Mode() function says which one was
	// selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments. Help messages are printed to the
// Output field as required; the ParseHelp return value only exists so the
// caller knows to stop without printing anything further.
func (md *Modes) Parse() (ParseResult, error) {
	help := &strings.Builder{}
	md.flags.SetOutput(help)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			if md.Output != nil {
				if len(md.subModes) > 0 {
					fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
					fmt.Fprintf(md.Output, "  default: %s\n\n", md.subModes[0])
				}
				if s := help.String(); s != "" {
					fmt.Fprint(md.Output, s)
				}
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// account for arguments consumed by the flag parsing so that the next
	// call to Parse() starts in the right place
	md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg()

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode until the argument matches one in the
		// list
		mode := md.subModes[0]
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments not yet consumed by a call to Parse().
// ie. arguments that are not flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or a listed
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
