// Package cpu implements the cricket CPU core: sixteen 16-bit registers,
// a flags word, and a single-instruction-per-Step interpreter.
package cpu

// Register ids. The low twelve are general purpose; the top four are
// aliased to the bank/stack/program-counter registers by convention
// rather than by a separate field set.
const (
	RegA uint8 = iota
	RegB
	RegC
	RegD
	RegE
	RegF
	RegG
	RegH
	RegI
	RegJ
	RegK
	RegL
	RegDB
	RegPB
	RegSP
	RegPC
)

// Flag bits.
const (
	FlagRUN uint8 = 1 << iota
	FlagCRASH
	FlagCARRY
	FlagZERO
	FlagIE     // INTERRUPT_ENABLE
	FlagIENext // INTERRUPT_ENABLE_NEXT (delayed-enable latch)
	FlagWAIT
)

// Interrupt vectors.
const (
	VectorVBLANK   uint16 = 0x80
	VectorHBLANK   uint16 = 0x88
	VectorKeyboard uint16 = 0x90
)

// Boot state.
const (
	bootPC = 0x0100
	bootSP = 0x9FFE
)

// Memory is the collaborator the CPU reads and writes through. The
// bank parameter governs only the banked windows; above
// 0xC000 it is ignored by the implementation on the other side.
type Memory interface {
	LoadByte(addr uint16, bank uint8) uint8
	StoreByte(addr uint16, bank uint8, value uint8)
	LoadWord(addr uint16, bank uint8) uint16
	StoreWord(addr uint16, bank uint8, value uint16)
}

// Logger receives diagnostics that never change guest-visible state.
// A nil Logger is legal everywhere in this package.
type Logger interface {
	Warnf(format string, args ...any)
}

// CPU is the complete architectural state plus its memory collaborator.
type CPU struct {
	Reg   [16]uint16
	Flags uint8

	Mem Memory
	Log Logger
}

// New constructs a CPU wired to mem and boots it to its power-on state.
func New(mem Memory, log Logger) *CPU {
	c := &CPU{Mem: mem, Log: log}
	c.Boot()
	return c
}

// Boot resets the CPU to its power-on state: PC=0x0100, PB=DB=0,
// SP=0x9FFE, flags=RUN|IE, all general registers zero.
func (c *CPU) Boot() {
	c.Reg = [16]uint16{}
	c.Reg[RegPC] = bootPC
	c.Reg[RegSP] = bootSP
	c.Flags = FlagRUN | FlagIE
}

func (c *CPU) flag(mask uint8) bool { return c.Flags&mask != 0 }

func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.Flags |= mask
	} else {
		c.Flags &^= mask
	}
}

// Running reports whether the CPU should continue to be stepped.
func (c *CPU) Running() bool { return c.flag(FlagRUN) }

// Crashed reports whether a decode error halted the CPU.
func (c *CPU) Crashed() bool { return c.flag(FlagCRASH) }

// Waiting reports whether the CPU is halted awaiting an interrupt.
func (c *CPU) Waiting() bool { return c.flag(FlagWAIT) }

// PC returns the current program counter (register id 15).
func (c *CPU) PC() uint16 { return c.Reg[RegPC] }

// PB returns the low 8 bits of the program bank register.
func (c *CPU) PB() uint8 { return uint8(c.Reg[RegPB]) }

// DB returns the low 8 bits of the data bank register.
func (c *CPU) DB() uint8 { return uint8(c.Reg[RegDB]) }

// SP returns the current stack pointer.
func (c *CPU) SP() uint16 { return c.Reg[RegSP] }

// Flag reports whether the given flag bit is currently set. Exported
// for callers (the frame driver) that need to observe the delayed
// interrupt-enable latch without reaching into package internals.
func (c *CPU) Flag(mask uint8) bool { return c.flag(mask) }

func (c *CPU) warnf(format string, args ...any) {
	if c.Log != nil {
		c.Log.Warnf(format, args...)
	}
}
