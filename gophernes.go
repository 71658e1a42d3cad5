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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/playmode"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
)

func init() {
	// SDL requires the main goroutine to be on the main OS thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	log := md.AddBool("log", false, "echo the log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	if *ver {
		fmt.Printf("%s %s\n", version.ApplicationName, version.Version())
		os.Exit(0)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(os.Stderr, "* statsview not included in this build. rebuild with the statsview build tag")
			os.Exit(10)
		}
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 2.0, "window scale")
	permissive := md.AddBool("permissive", false, "log, rather than fail on, accesses the hardware would not allow")
	uncapped := md.AddBool("uncapped", false, "run as fast as possible, with no frame rate cap")
	trace := md.AddBool("trace", false, "print an execution trace to stdout")
	profile := md.AddBool("profile", false, "write cpu.profile file for the duration of the emulation")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	runner := func() error {
		return playmode.Play(cartload, float32(*scale), *permissive, !*uncapped, *trace)
	}

	if *profile {
		return performance.ProfileCPU("cpu.profile", runner)
	}

	return runner()
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	permissive := md.AddBool("permissive", false, "log, rather than fail on, accesses the hardware would not allow")
	trace := md.AddBool("trace", false, "start with instruction tracing on")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	dbg, err := debugger.NewDebugger(cartload)
	if err != nil {
		return err
	}

	dbg.SetPermissive(*permissive)
	dbg.SetTrace(*trace)

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional duration for profiling)")
	profile := md.AddBool("profile", false, "write cpu.profile and mem.profile files")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	return performance.Check(md.Output, cartload, *profile, *duration)
}
