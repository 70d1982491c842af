package cpu

// Arithmetic/logic opcodes (bits 14..10 of the instruction word).
const (
	opMOVE uint8 = 0x00
	opADD  uint8 = 0x01
	opSUB  uint8 = 0x02
	opUMUL uint8 = 0x03
	opSMUL uint8 = 0x04
	opUDIV uint8 = 0x05
	opSDIV uint8 = 0x06
	opUMOD uint8 = 0x07
	opSMOD uint8 = 0x08
	opAND  uint8 = 0x09
	opOR   uint8 = 0x0A
	opXOR  uint8 = 0x0B
	opNOT  uint8 = 0x0C
	opNEG  uint8 = 0x0D
	opINC  uint8 = 0x0E
	opDEC  uint8 = 0x0F
	opSHL  uint8 = 0x10
	opSHR  uint8 = 0x11
	opSAR  uint8 = 0x12
	opROL  uint8 = 0x13
	opROR  uint8 = 0x14
	opBIT  uint8 = 0x15
	opADC  uint8 = 0x16
	opSBC  uint8 = 0x17
	opMULC uint8 = 0x18
	opUCMP uint8 = 0x1E
	opSCMP uint8 = 0x1F
)

// execArith dispatches a decoded arithmetic-family instruction. Carry-in
// is captured before CARRY/ZERO are cleared, the operation runs and may
// set CARRY, and finally ZERO is set for any non-compare opcode whose
// destination register ends up zero.
func (c *CPU) execArith(d decoded) {
	src, ok := c.resolveOperand(d)
	if !ok {
		c.crash()
		return
	}

	carryIn := uint16(0)
	if c.flag(FlagCARRY) {
		carryIn = 1
	}
	c.setFlag(FlagCARRY, false)
	c.setFlag(FlagZERO, false)

	dest := c.Reg[d.dest]

	switch d.op {
	case opMOVE:
		c.Reg[d.dest] = src

	case opADD:
		sum := uint32(dest) + uint32(src)
		c.setFlag(FlagCARRY, sum > 0xFFFF)
		c.Reg[d.dest] = uint16(sum)

	case opSUB:
		c.setFlag(FlagCARRY, dest < src)
		c.Reg[d.dest] = dest - src

	case opUMUL:
		prod := uint32(dest) * uint32(src)
		c.setFlag(FlagCARRY, prod > 0xFFFF)
		c.Reg[d.dest] = uint16(prod)

	case opSMUL:
		prod := int32(int16(dest)) * int32(int16(src))
		c.setFlag(FlagCARRY, prod >= 0x8000)
		c.Reg[d.dest] = uint16(int16(prod))

	case opUDIV:
		if src == 0 {
			c.crash()
			return
		}
		c.Reg[d.dest] = dest / src

	case opSDIV:
		if src == 0 {
			c.crash()
			return
		}
		c.Reg[d.dest] = uint16(int16(dest) / int16(src))

	case opUMOD:
		if src == 0 {
			c.crash()
			return
		}
		c.Reg[d.dest] = dest % src

	case opSMOD:
		if src == 0 {
			c.crash()
			return
		}
		sd, ss := int32(int16(dest)), int32(int16(src))
		m := ((sd % ss) + ss) % ss
		c.Reg[d.dest] = uint16(int16(m))

	case opAND:
		c.Reg[d.dest] = dest & src
	case opOR:
		c.Reg[d.dest] = dest | src
	case opXOR:
		c.Reg[d.dest] = dest ^ src
	case opNOT:
		c.Reg[d.dest] = ^dest

	case opNEG:
		c.Reg[d.dest] = -dest

	case opINC:
		sum := uint32(dest) + 1
		c.setFlag(FlagCARRY, sum > 0xFFFF)
		c.Reg[d.dest] = uint16(sum)

	case opDEC:
		c.setFlag(FlagCARRY, dest == 0)
		c.Reg[d.dest] = dest - 1

	// Shift amount is masked to 0-15, so an amount of 16+k shifts by k
	// and a multiple of 16 (every pow2 source operand) leaves dest
	// unchanged. Amounts above 15 can come from a register, the pow2
	// operand or the full-word immediate; the 4-bit immediate cannot
	// produce one.
	case opSHL:
		amt := src & 0xF
		c.setFlag(FlagCARRY, dest&0x8000 != 0)
		c.Reg[d.dest] = dest << amt

	case opSHR:
		amt := src & 0xF
		c.Reg[d.dest] = dest >> amt

	case opSAR:
		amt := src & 0xF
		c.Reg[d.dest] = uint16(int16(dest) >> amt)

	case opROL:
		amt := src & 0xF
		if amt == 0 {
			c.Reg[d.dest] = dest
		} else {
			c.Reg[d.dest] = (dest << amt) | (dest >> (16 - amt))
		}

	case opROR:
		amt := src & 0xF
		if amt == 0 {
			c.Reg[d.dest] = dest
		} else {
			c.Reg[d.dest] = (dest >> amt) | (dest << (16 - amt))
		}

	case opBIT:
		bit := src & 0xF
		c.setFlag(FlagZERO, dest&(1<<bit) == 0)
		return

	case opADC:
		sum := uint32(dest) + uint32(src) + uint32(carryIn)
		c.setFlag(FlagCARRY, sum > 0xFFFF)
		c.Reg[d.dest] = uint16(sum)

	case opSBC:
		diff := int32(dest) - int32(src) - int32(carryIn)
		c.setFlag(FlagCARRY, diff < 0)
		c.Reg[d.dest] = uint16(diff)

	case opMULC:
		prod := uint32(dest)*uint32(src) + uint32(carryIn)
		c.setFlag(FlagCARRY, prod > 0xFFFF)
		c.Reg[d.dest] = uint16(prod)

	case opUCMP:
		c.setFlag(FlagCARRY, dest < src)
		c.setFlag(FlagZERO, dest == src)
		return

	case opSCMP:
		c.setFlag(FlagCARRY, int16(dest) < int16(src))
		c.setFlag(FlagZERO, dest == src)
		return

	default:
		c.crash()
		return
	}

	if d.op < 0x1E && c.Reg[d.dest] == 0 {
		c.setFlag(FlagZERO, true)
	}
}

// resolveOperand turns the decoded source operand into a concrete
// value, fetching the trailing immediate word when the encoding calls
// for one.
func (c *CPU) resolveOperand(d decoded) (uint16, bool) {
	switch d.src {
	case operandReg:
		return c.Reg[d.srcOp], true
	case operandImm4:
		return uint16(d.srcOp), true
	case operandImmWord:
		return c.fetchImmediate(), true
	case operandConstFFFF:
		return 0xFFFF, true
	case operandPow2:
		return 1 << d.srcOp, true
	default:
		return 0, false
	}
}
