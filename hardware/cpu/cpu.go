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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
)

// UnmappedOpcode is the error returned when the CPU decodes an opcode
// value with no entry in the instruction table.
const UnmappedOpcode = "cpu: unmapped opcode %#02x at %#04x"

// Interrupt vectors at the top of the address space.
const (
	NMIVector   = 0xfffa
	ResetVector = 0xfffc
	IRQVector   = 0xfffe
)

// CPU implements the 6502 found in the NES.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem bus.CPUBus

	// the details of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	defns []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Reset() must be called before execution begins.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		mem:    mem,
		defns:  instructions.GetDefinitions(),
	}
}

func (cp *CPU) String() string {
	return fmt.Sprintf("PC=%s %s %s %s %s SR=%s",
		cp.PC, cp.A, cp.X, cp.Y, cp.SP, cp.Status)
}

// Reset puts the CPU into the state it is in when the console is switched
// on. The program counter is loaded from the reset vector so the
// cartridge must be attached to the bus before Reset() is called.
func (cp *CPU) Reset() error {
	cp.A.Load(0)
	cp.X.Load(0)
	cp.Y.Load(0)
	cp.SP.Load(0xfd)
	cp.Status.Reset()

	pc, err := cp.read16(ResetVector)
	if err != nil {
		return err
	}
	cp.PC.Load(pc)

	return nil
}

func (cp *CPU) read16(address uint16) (uint16, error) {
	lo, err := cp.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := cp.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (cp *CPU) push(data uint8) error {
	err := cp.mem.Write(0x0100|cp.SP.Address(), data)
	cp.SP.Load(cp.SP.Value() - 1)
	return err
}

func (cp *CPU) push16(data uint16) error {
	if err := cp.push(uint8(data >> 8)); err != nil {
		return err
	}
	return cp.push(uint8(data))
}

func (cp *CPU) pull() (uint8, error) {
	cp.SP.Load(cp.SP.Value() + 1)
	return cp.mem.Read(0x0100 | cp.SP.Address())
}

func (cp *CPU) pull16() (uint16, error) {
	lo, err := cp.pull()
	if err != nil {
		return 0, err
	}
	hi, err := cp.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// ServiceNMI interrupts whatever the CPU is doing and jumps to the NMI
// routine pointed to by the NMI vector. The second return value is the
// number of cycles the interrupt entry consumed.
func (cp *CPU) ServiceNMI() (int, error) {
	if err := cp.push16(cp.PC.Address()); err != nil {
		return 0, err
	}

	// the break flag is clear in the copy of the status register pushed by
	// a hardware interrupt. the unused bit is always high
	if err := cp.push(cp.Status.Value() &^ 0x10); err != nil {
		return 0, err
	}

	cp.Status.InterruptDisable = true

	pc, err := cp.read16(NMIVector)
	if err != nil {
		return 0, err
	}
	cp.PC.Load(pc)

	return 2, nil
}

// effectiveAddress computes the address of the instruction operand. The
// program counter must be pointing at the first byte after the opcode.
//
// For the Immediate mode the returned address is the address of the
// operand byte itself. The second return value indicates that indexing
// crossed a page boundary, which costs the read instructions an extra
// cycle.
func (cp *CPU) effectiveAddress(mode instructions.AddressingMode) (uint16, bool, error) {
	pc := cp.PC.Address()

	switch mode {
	case instructions.Immediate:
		return pc, false, nil

	case instructions.ZeroPage:
		v, err := cp.mem.Read(pc)
		return uint16(v), false, err

	case instructions.ZeroPageX:
		v, err := cp.mem.Read(pc)
		// zero page indexing wraps within the zero page
		return uint16(v + cp.X.Value()), false, err

	case instructions.ZeroPageY:
		v, err := cp.mem.Read(pc)
		return uint16(v + cp.Y.Value()), false, err

	case instructions.Absolute:
		v, err := cp.read16(pc)
		return v, false, err

	case instructions.AbsoluteX:
		base, err := cp.read16(pc)
		addr := base + cp.X.Address()
		return addr, (base^addr)&0xff00 != 0, err

	case instructions.AbsoluteY:
		base, err := cp.read16(pc)
		addr := base + cp.Y.Address()
		return addr, (base^addr)&0xff00 != 0, err

	case instructions.Indirect:
		ptr, err := cp.read16(pc)
		if err != nil {
			return 0, false, err
		}

		// the 6502 does not cross a page boundary when reading the second
		// byte of the indirect address. JMP ($xxff) reads the high byte
		// from the start of the same page
		if ptr&0x00ff == 0x00ff {
			lo, err := cp.mem.Read(ptr)
			if err != nil {
				return 0, false, err
			}
			hi, err := cp.mem.Read(ptr & 0xff00)
			return uint16(hi)<<8 | uint16(lo), false, err
		}

		addr, err := cp.read16(ptr)
		return addr, false, err

	case instructions.IndirectX:
		base, err := cp.mem.Read(pc)
		if err != nil {
			return 0, false, err
		}
		ptr := base + cp.X.Value()
		lo, err := cp.mem.Read(uint16(ptr))
		if err != nil {
			return 0, false, err
		}
		hi, err := cp.mem.Read(uint16(ptr + 1))
		return uint16(hi)<<8 | uint16(lo), false, err

	case instructions.IndirectY:
		base, err := cp.mem.Read(pc)
		if err != nil {
			return 0, false, err
		}
		lo, err := cp.mem.Read(uint16(base))
		if err != nil {
			return 0, false, err
		}
		hi, err := cp.mem.Read(uint16(base + 1))
		if err != nil {
			return 0, false, err
		}
		deref := uint16(hi)<<8 | uint16(lo)
		addr := deref + cp.Y.Address()
		return addr, (deref^addr)&0xff00 != 0, err
	}

	return 0, false, curated.Errorf("cpu: no effective address in %s mode", mode)
}

// load reads the instruction operand. penalty indicates whether a page
// crossing during address computation costs an extra cycle.
func (cp *CPU) load(mode instructions.AddressingMode, penalty bool) (uint8, error) {
	addr, cross, err := cp.effectiveAddress(mode)
	if err != nil {
		return 0, err
	}
	if penalty && cross {
		cp.LastResult.Cycles++
	}
	return cp.mem.Read(addr)
}

func (cp *CPU) store(mode instructions.AddressingMode, data uint8) error {
	addr, _, err := cp.effectiveAddress(mode)
	if err != nil {
		return err
	}
	return cp.mem.Write(addr, data)
}

// modify reads the operand, applies f and writes the new value back.
// Returns the new value. The read-modify-write instructions have fixed
// cycle counts so there is no page crossing penalty.
func (cp *CPU) modify(mode instructions.AddressingMode, f func(uint8) uint8) (uint8, error) {
	addr, _, err := cp.effectiveAddress(mode)
	if err != nil {
		return 0, err
	}
	v, err := cp.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	v = f(v)
	return v, cp.mem.Write(addr, v)
}

func (cp *CPU) setZN(v uint8) {
	cp.Status.Zero = v == 0
	cp.Status.Sign = v&0x80 == 0x80
}

func (cp *CPU) compare(reg uint8, v uint8) {
	cp.Status.Carry = reg >= v
	cp.setZN(reg - v)
}

// branch to the relative address if cond is true. A taken branch costs an
// extra cycle, one more if it crosses a page boundary.
func (cp *CPU) branch(cond bool) error {
	if !cond {
		return nil
	}

	offset, err := cp.mem.Read(cp.PC.Address())
	if err != nil {
		return err
	}

	cp.LastResult.Cycles++

	from := cp.PC.Address() + 1
	to := from + uint16(int8(offset))
	if (from^to)&0xff00 != 0 {
		cp.LastResult.Cycles++
	}
	cp.PC.Load(to)

	return nil
}

// adc adds the value and the carry flag to the accumulator and sets the
// arithmetic flags. Used by ADC, SBC (against the complement) and RRA.
func (cp *CPU) adc(v uint8, carry bool) {
	c, o := cp.A.Add(v, carry)
	cp.Status.Carry = c
	cp.Status.Overflow = o
	cp.setZN(cp.A.Value())
}

func (cp *CPU) sbc(v uint8, carry bool) {
	c, o := cp.A.Subtract(v, carry)
	cp.Status.Carry = c
	cp.Status.Overflow = o
	cp.setZN(cp.A.Value())
}

// ExecuteInstruction runs one complete instruction, filling in the
// LastResult field as it goes.
func (cp *CPU) ExecuteInstruction() error {
	opcodeAddr := cp.PC.Address()

	opcode, err := cp.mem.Read(opcodeAddr)
	if err != nil {
		return err
	}

	defn := cp.defns[opcode]
	if defn == nil {
		return curated.Errorf(UnmappedOpcode, opcode, opcodeAddr)
	}

	cp.PC.Add(1)
	operandAddr := cp.PC.Address()

	cp.LastResult = execution.Result{
		Address: opcodeAddr,
		Defn:    defn,
		Cycles:  defn.Cycles,
	}

	// record the operand bytes for the benefit of step observers. operands
	// are in program memory so the extra read has no side effects
	switch defn.Bytes {
	case 2:
		v, err := cp.mem.Read(operandAddr)
		if err != nil {
			return err
		}
		cp.LastResult.InstructionData = uint16(v)
	case 3:
		v, err := cp.read16(operandAddr)
		if err != nil {
			return err
		}
		cp.LastResult.InstructionData = v
	}

	mode := defn.AddressingMode

	switch defn.Mnemonic {
	case "ADC":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.adc(v, cp.Status.Carry)

	case "SBC":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.sbc(v, cp.Status.Carry)

	case "AND":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.A.AND(v)
		cp.setZN(cp.A.Value())

	case "EOR":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.A.EOR(v)
		cp.setZN(cp.A.Value())

	case "ORA":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.A.ORA(v)
		cp.setZN(cp.A.Value())

	case "ASL":
		if mode == instructions.Implied {
			cp.Status.Carry = cp.A.ASL()
			cp.setZN(cp.A.Value())
		} else {
			var carry bool
			v, err := cp.modify(mode, func(v uint8) uint8 {
				carry = v&0x80 == 0x80
				return v << 1
			})
			if err != nil {
				return err
			}
			cp.Status.Carry = carry
			cp.setZN(v)
		}

	case "LSR":
		if mode == instructions.Implied {
			cp.Status.Carry = cp.A.LSR()
			cp.setZN(cp.A.Value())
		} else {
			var carry bool
			v, err := cp.modify(mode, func(v uint8) uint8 {
				carry = v&0x01 == 0x01
				return v >> 1
			})
			if err != nil {
				return err
			}
			cp.Status.Carry = carry
			cp.setZN(v)
		}

	case "ROL":
		if mode == instructions.Implied {
			cp.Status.Carry = cp.A.ROL(cp.Status.Carry)
			cp.setZN(cp.A.Value())
		} else {
			var carry bool
			v, err := cp.modify(mode, func(v uint8) uint8 {
				carry = v&0x80 == 0x80
				v <<= 1
				if cp.Status.Carry {
					v |= 0x01
				}
				return v
			})
			if err != nil {
				return err
			}
			cp.Status.Carry = carry
			cp.setZN(v)
		}

	case "ROR":
		if mode == instructions.Implied {
			cp.Status.Carry = cp.A.ROR(cp.Status.Carry)
			cp.setZN(cp.A.Value())
		} else {
			var carry bool
			v, err := cp.modify(mode, func(v uint8) uint8 {
				carry = v&0x01 == 0x01
				v >>= 1
				if cp.Status.Carry {
					v |= 0x80
				}
				return v
			})
			if err != nil {
				return err
			}
			cp.Status.Carry = carry
			cp.setZN(v)
		}

	case "BCC":
		err = cp.branch(!cp.Status.Carry)
	case "BCS":
		err = cp.branch(cp.Status.Carry)
	case "BEQ":
		err = cp.branch(cp.Status.Zero)
	case "BNE":
		err = cp.branch(!cp.Status.Zero)
	case "BMI":
		err = cp.branch(cp.Status.Sign)
	case "BPL":
		err = cp.branch(!cp.Status.Sign)
	case "BVS":
		err = cp.branch(cp.Status.Overflow)
	case "BVC":
		err = cp.branch(!cp.Status.Overflow)

	case "BIT":
		v, err := cp.load(mode, false)
		if err != nil {
			return err
		}
		cp.Status.Zero = cp.A.Value()&v == 0
		cp.Status.Sign = v&0x80 == 0x80
		cp.Status.Overflow = v&0x40 == 0x40

	case "BRK":
		// the byte after a BRK is padding. the pushed return address
		// skips over it
		cp.PC.Add(1)
		if err := cp.push16(cp.PC.Address()); err != nil {
			return err
		}
		if err := cp.push(cp.Status.Value() | 0x10); err != nil {
			return err
		}
		cp.Status.InterruptDisable = true
		pc, err := cp.read16(IRQVector)
		if err != nil {
			return err
		}
		cp.PC.Load(pc)

	case "CLC":
		cp.Status.Carry = false
	case "SEC":
		cp.Status.Carry = true
	case "CLI":
		cp.Status.InterruptDisable = false
	case "SEI":
		cp.Status.InterruptDisable = true
	case "CLV":
		cp.Status.Overflow = false
	case "CLD":
		cp.Status.DecimalMode = false
	case "SED":
		cp.Status.DecimalMode = true

	case "CMP":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.compare(cp.A.Value(), v)

	case "CPX":
		v, err := cp.load(mode, false)
		if err != nil {
			return err
		}
		cp.compare(cp.X.Value(), v)

	case "CPY":
		v, err := cp.load(mode, false)
		if err != nil {
			return err
		}
		cp.compare(cp.Y.Value(), v)

	case "DEC":
		v, err := cp.modify(mode, func(v uint8) uint8 { return v - 1 })
		if err != nil {
			return err
		}
		cp.setZN(v)

	case "INC":
		v, err := cp.modify(mode, func(v uint8) uint8 { return v + 1 })
		if err != nil {
			return err
		}
		cp.setZN(v)

	case "DEX":
		cp.X.Load(cp.X.Value() - 1)
		cp.setZN(cp.X.Value())
	case "DEY":
		cp.Y.Load(cp.Y.Value() - 1)
		cp.setZN(cp.Y.Value())
	case "INX":
		cp.X.Load(cp.X.Value() + 1)
		cp.setZN(cp.X.Value())
	case "INY":
		cp.Y.Load(cp.Y.Value() + 1)
		cp.setZN(cp.Y.Value())

	case "JMP":
		addr, _, err := cp.effectiveAddress(mode)
		if err != nil {
			return err
		}
		cp.PC.Load(addr)

	case "JSR":
		target, _, err := cp.effectiveAddress(mode)
		if err != nil {
			return err
		}
		// the pushed address is the address of the last byte of the JSR
		// instruction. RTS adds the missing one
		if err := cp.push16(cp.PC.Address() + 1); err != nil {
			return err
		}
		cp.PC.Load(target)

	case "RTS":
		v, err := cp.pull16()
		if err != nil {
			return err
		}
		cp.PC.Load(v + 1)

	case "RTI":
		v, err := cp.pull()
		if err != nil {
			return err
		}
		cp.Status.FromValue(v)
		cp.Status.Break = false
		pc, err := cp.pull16()
		if err != nil {
			return err
		}
		cp.PC.Load(pc)

	case "LDA":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.A.Load(v)
		cp.setZN(v)

	case "LDX":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.X.Load(v)
		cp.setZN(v)

	case "LDY":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.Y.Load(v)
		cp.setZN(v)

	case "STA":
		err = cp.store(mode, cp.A.Value())
	case "STX":
		err = cp.store(mode, cp.X.Value())
	case "STY":
		err = cp.store(mode, cp.Y.Value())

	case "PHA":
		err = cp.push(cp.A.Value())

	case "PHP":
		// the break flag is set in the copy of the status register pushed
		// by an instruction, as opposed to a hardware interrupt
		err = cp.push(cp.Status.Value() | 0x10)

	case "PLA":
		v, err := cp.pull()
		if err != nil {
			return err
		}
		cp.A.Load(v)
		cp.setZN(v)

	case "PLP":
		v, err := cp.pull()
		if err != nil {
			return err
		}
		cp.Status.FromValue(v)
		cp.Status.Break = false

	case "TAX":
		cp.X.Load(cp.A.Value())
		cp.setZN(cp.X.Value())
	case "TAY":
		cp.Y.Load(cp.A.Value())
		cp.setZN(cp.Y.Value())
	case "TSX":
		cp.X.Load(cp.SP.Value())
		cp.setZN(cp.X.Value())
	case "TXA":
		cp.A.Load(cp.X.Value())
		cp.setZN(cp.A.Value())
	case "TYA":
		cp.A.Load(cp.Y.Value())
		cp.setZN(cp.A.Value())
	case "TXS":
		// no flags
		cp.SP.Load(cp.X.Value())

	case "NOP":
		// the undocumented NOPs with an operand perform the read and pay
		// the page crossing penalty, they just discard the result
		if mode != instructions.Implied {
			if _, err := cp.load(mode, true); err != nil {
				return err
			}
		}

	case "LAX":
		v, err := cp.load(mode, true)
		if err != nil {
			return err
		}
		cp.A.Load(v)
		cp.X.Load(v)
		cp.setZN(v)

	case "SAX":
		err = cp.store(mode, cp.A.Value()&cp.X.Value())

	case "DCP":
		v, err := cp.modify(mode, func(v uint8) uint8 { return v - 1 })
		if err != nil {
			return err
		}
		cp.compare(cp.A.Value(), v)

	case "ISB":
		v, err := cp.modify(mode, func(v uint8) uint8 { return v + 1 })
		if err != nil {
			return err
		}
		cp.sbc(v, cp.Status.Carry)

	case "SLO":
		var carry bool
		v, err := cp.modify(mode, func(v uint8) uint8 {
			carry = v&0x80 == 0x80
			return v << 1
		})
		if err != nil {
			return err
		}
		cp.Status.Carry = carry
		cp.A.ORA(v)
		cp.setZN(cp.A.Value())

	case "RLA":
		var carry bool
		v, err := cp.modify(mode, func(v uint8) uint8 {
			carry = v&0x80 == 0x80
			v <<= 1
			if cp.Status.Carry {
				v |= 0x01
			}
			return v
		})
		if err != nil {
			return err
		}
		cp.Status.Carry = carry
		cp.A.AND(v)
		cp.setZN(cp.A.Value())

	case "SRE":
		var carry bool
		v, err := cp.modify(mode, func(v uint8) uint8 {
			carry = v&0x01 == 0x01
			return v >> 1
		})
		if err != nil {
			return err
		}
		cp.Status.Carry = carry
		cp.A.EOR(v)
		cp.setZN(cp.A.Value())

	case "RRA":
		var carry bool
		v, err := cp.modify(mode, func(v uint8) uint8 {
			carry = v&0x01 == 0x01
			v >>= 1
			if cp.Status.Carry {
				v |= 0x80
			}
			return v
		})
		if err != nil {
			return err
		}
		cp.adc(v, carry)

	default:
		return curated.Errorf("cpu: no implementation for %s", defn.Mnemonic)
	}

	if err != nil {
		return err
	}

	// advance the program counter past the operand unless the instruction
	// has redirected it
	if cp.PC.Address() == operandAddr {
		cp.PC.Add(uint16(defn.Bytes - 1))
	}

	return nil
}
