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

// Package debugger is an interactive instruction-stepped debugger for
// the emulated console. All numbers entered at the prompt are
// hexadecimal.
package debugger

import (
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/colorterm"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/tracer"
)

const prompt = "[gophernes] $ "

const helpText = `STEP [n]        step one (or n) instructions
RUN [frames]    run, optionally for a number of frames. ctrl-c stops
REGS            show CPU and PPU state
PEEK addr       read a byte without side effects
POKE addr val   write a byte, including to program memory
TRACE           toggle tracing of executed instructions
LAST            show the last executed instruction
LOG             show the log
QUIT            leave the debugger`

// Debugger is the debugging environment for the console.
type Debugger struct {
	nes  *hardware.NES
	term *colorterm.ColorTerminal

	// when tracing is on, every stepped instruction prints a trace line
	trace bool

	// ctrl-c during a free-running emulation lands here
	intChan chan os.Signal
}

// NewDebugger creates a console around the cartridge identified by the
// loader and attaches the debugging environment to it.
func NewDebugger(cartload cartridgeloader.Loader) (*Debugger, error) {
	nes, err := hardware.NewNES(cartload)
	if err != nil {
		return nil, err
	}

	dbg := &Debugger{
		nes:     nes,
		term:    &colorterm.ColorTerminal{},
		intChan: make(chan os.Signal, 1),
	}

	if err := dbg.term.Initialise(); err != nil {
		return nil, err
	}

	signal.Notify(dbg.intChan, os.Interrupt)

	return dbg, nil
}

// SetPermissive downgrades illegal bus accesses from errors to log
// entries.
func (dbg *Debugger) SetPermissive(permissive bool) {
	dbg.nes.Mem.Permissive = permissive
}

// SetTrace turns instruction tracing on or off, as the TRACE command
// does.
func (dbg *Debugger) SetTrace(trace bool) {
	dbg.trace = trace
}

// Start the input loop. Returns when the user quits.
func (dbg *Debugger) Start() error {
	defer dbg.term.CleanUp()

	dbg.term.Printlnf(colorterm.StyleFeedback, "%s", dbg.nes.CPU.String())

	for {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, colorterm.UserQuit) {
				return nil
			}
			if curated.Is(err, colorterm.UserInterrupt) {
				dbg.term.Printlnf(colorterm.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}
			return err
		}

		if err := dbg.parseCommand(input); err != nil {
			if curated.Is(err, colorterm.UserQuit) {
				return nil
			}
			dbg.term.Printlnf(colorterm.StyleError, "%v", err)
		}
	}
}

func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(strings.ToUpper(input))
	if len(toks) == 0 {
		return nil
	}

	switch toks[0] {
	case "STEP":
		n := 1
		if len(toks) > 1 {
			v, err := strconv.Atoi(toks[1])
			if err != nil {
				return curated.Errorf("debugger: not a step count: %s", toks[1])
			}
			n = v
		}
		return dbg.step(n)

	case "RUN":
		frames := -1
		if len(toks) > 1 {
			v, err := strconv.Atoi(toks[1])
			if err != nil {
				return curated.Errorf("debugger: not a frame count: %s", toks[1])
			}
			frames = v
		}
		return dbg.run(frames)

	case "REGS":
		dbg.term.Printlnf(colorterm.StyleCPU, "%s", dbg.nes.CPU.String())
		dbg.term.Printlnf(colorterm.StyleCPU, "%s", dbg.nes.Mem.PPU.String())
		return nil

	case "PEEK":
		if len(toks) < 2 {
			return curated.Errorf("debugger: PEEK requires an address")
		}
		addr, err := parseAddress(toks[1])
		if err != nil {
			return err
		}
		v, err := dbg.nes.Mem.Peek(addr)
		if err != nil {
			return err
		}
		dbg.term.Printlnf(colorterm.StyleFeedback, "%#04x = %#02x", addr, v)
		return nil

	case "POKE":
		if len(toks) < 3 {
			return curated.Errorf("debugger: POKE requires an address and a value")
		}
		addr, err := parseAddress(toks[1])
		if err != nil {
			return err
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(toks[2], "$"), 16, 8)
		if err != nil {
			return curated.Errorf("debugger: not a byte value: %s", toks[2])
		}
		return dbg.nes.Mem.Poke(addr, uint8(val))

	case "TRACE":
		dbg.trace = !dbg.trace
		if dbg.trace {
			dbg.term.Printlnf(colorterm.StyleFeedback, "tracing on")
		} else {
			dbg.term.Printlnf(colorterm.StyleFeedback, "tracing off")
		}
		return nil

	case "LAST":
		dbg.term.Printlnf(colorterm.StyleCPU, "%s", dbg.nes.CPU.LastResult.String())
		return nil

	case "LOG":
		logger.Write(logWriter{dbg.term})
		return nil

	case "HELP":
		dbg.term.Printlnf(colorterm.StyleHelp, "%s", helpText)
		return nil

	case "QUIT":
		return curated.Errorf(colorterm.UserQuit)
	}

	return curated.Errorf("debugger: unrecognised command: %s", toks[0])
}

// observer prints a trace line for the instruction about to execute.
func (dbg *Debugger) observer() error {
	s, err := tracer.Trace(dbg.nes)
	if err != nil {
		return err
	}
	dbg.term.Printlnf(colorterm.StyleCPU, "%s", s)
	return nil
}

func (dbg *Debugger) step(n int) error {
	for i := 0; i < n; i++ {
		observer := hardware.StepObserver(nil)
		if dbg.trace {
			observer = dbg.observer
		}
		if err := dbg.nes.Step(observer); err != nil {
			return err
		}
	}

	if !dbg.trace {
		dbg.term.Printlnf(colorterm.StyleCPU, "%s", dbg.nes.CPU.LastResult.String())
	}
	return nil
}

// run the emulation until ctrl-c, or for the given number of frames if
// frames is positive.
func (dbg *Debugger) run(frames int) error {
	endFrame := dbg.nes.Mem.PPU.Frame + uint64(frames)

	// drain any interrupt that arrived while at the prompt
	select {
	case <-dbg.intChan:
	default:
	}

	for {
		observer := hardware.StepObserver(nil)
		if dbg.trace {
			observer = dbg.observer
		}
		if err := dbg.nes.Step(observer); err != nil {
			return err
		}

		if frames > 0 && dbg.nes.Mem.PPU.Frame >= endFrame {
			return nil
		}

		select {
		case <-dbg.intChan:
			dbg.term.Printlnf(colorterm.StyleFeedback, "emulation stopped")
			return nil
		default:
		}
	}
}

// parseAddress accepts hexadecimal addresses with or without a leading
// dollar sign or 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address: %s", s)
	}
	return uint16(v), nil
}

// logWriter funnels the log through the terminal in the log style.
type logWriter struct {
	term *colorterm.ColorTerminal
}

func (l logWriter) Write(p []byte) (int, error) {
	l.term.Printf(colorterm.StyleLog, "%s", string(p))
	return len(p), nil
}
