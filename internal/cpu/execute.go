package cpu

// Step executes the single instruction pointed to by PC.
// A decode error sets CRASH and clears RUN with no partial side
// effects; all other instructions complete atomically from the
// caller's point of view.
func (c *CPU) Step() {
	if !c.Running() {
		return
	}

	pc := c.Reg[RegPC]
	flags := c.Flags
	word := c.fetchWord(pc)
	c.Reg[RegPC] = pc + 2

	d := decode(word)
	switch d.fam {
	case famMisc:
		c.execMisc(d)
	case famLoadStore:
		c.execLoadStore(d)
	case famJump:
		c.execJump(d)
	case famArith:
		c.execArith(d)
	default:
		c.crash()
	}

	// A crashing instruction leaves PC and the other flags as they were
	// before it was fetched.
	if flags&FlagCRASH == 0 && c.Crashed() {
		c.Reg[RegPC] = pc
		c.Flags = flags&^FlagRUN | FlagCRASH
	}
}

func (c *CPU) crash() {
	c.setFlag(FlagCRASH, true)
	c.setFlag(FlagRUN, false)
}

// fetchWord reads one big-endian word from program-bank space.
func (c *CPU) fetchWord(addr uint16) uint16 {
	return c.Mem.LoadWord(addr, c.PB())
}

// fetchImmediate reads the 16-bit word immediately following the
// current instruction and advances PC past it.
func (c *CPU) fetchImmediate() uint16 {
	v := c.fetchWord(c.Reg[RegPC])
	c.Reg[RegPC] += 2
	return v
}

func (c *CPU) push(v uint16) {
	c.Reg[RegSP] -= 2
	c.Mem.StoreWord(c.Reg[RegSP], c.DB(), v)
}

func (c *CPU) pop() uint16 {
	v := c.Mem.LoadWord(c.Reg[RegSP], c.DB())
	c.Reg[RegSP] += 2
	return v
}

// --- misc family (0x0) ---

func (c *CPU) execMisc(d decoded) {
	switch d.miscSub {
	case 0x0:
		c.execMiscZero(d.miscLow)
	case 0x1: // PUSH r
		c.push(c.Reg[d.reg1])
	case 0x2: // POP r
		c.Reg[d.reg1] = c.pop()
	case 0x3: // JMP r
		c.Reg[RegPC] = c.Reg[d.reg1]
	case 0x4: // SWAP r1, r2
		c.Reg[d.reg1], c.Reg[d.reg2] = c.Reg[d.reg2], c.Reg[d.reg1]
	default:
		c.crash()
	}
}

func (c *CPU) execMiscZero(low uint8) {
	switch low {
	case 0x01: // NOP
	case 0x02: // HALT
		c.setFlag(FlagWAIT, true)
	case 0x28: // clear CARRY
		c.setFlag(FlagCARRY, false)
	case 0xAA: // RETURN
		c.Reg[RegPC] = c.pop()
	case 0xAB: // RETI
		c.Reg[RegPC] = c.pop()
		c.setFlag(FlagIENext, true)
	case 0xDD: // disable interrupts immediately
		c.setFlag(FlagIE, false)
		c.setFlag(FlagIENext, false)
	case 0xEE: // set INTERRUPT_ENABLE_NEXT
		c.setFlag(FlagIENext, true)
	case 0xFF: // clear RUN (stop)
		c.setFlag(FlagRUN, false)
	default:
		c.crash()
	}
}

// --- load/store family (0x2..0x3) ---

func (c *CPU) execLoadStore(d decoded) {
	var addr uint16
	switch d.lsAdr {
	case operandReg:
		addr = c.Reg[d.lsRR]
	case operandRegPlusImmWord:
		imm := c.fetchImmediate()
		addr = c.Reg[d.lsRR] + imm
	case operandAbsImmWord:
		addr = c.fetchImmediate()
	default:
		c.crash()
		return
	}

	bank := c.DB()
	switch d.lsOp {
	case 0: // LW
		c.Reg[d.lsReg] = c.Mem.LoadWord(addr, bank)
	case 1: // LB
		c.Reg[d.lsReg] = uint16(c.Mem.LoadByte(addr, bank))
	case 2: // SW
		c.Mem.StoreWord(addr, bank, c.Reg[d.lsReg])
	case 3: // SB
		c.Mem.StoreByte(addr, bank, uint8(c.Reg[d.lsReg]))
	}
}

// --- jump family (0x4..0x7) ---

func (c *CPU) execJump(d decoded) {
	if d.isAbs {
		target := c.fetchImmediate()
		c.doJump(d.cond, target, true)
		return
	}
	// Relative offset is measured from the instruction's own address,
	// not from PC after the opcode word fetch.
	instrAddr := c.Reg[RegPC] - 2
	target := uint16(int32(instrAddr) + int32(d.offset)*2)
	c.doJump(d.cond, target, false)
}

func (c *CPU) doJump(cond uint8, target uint16, wasAbs bool) {
	var taken bool
	switch cond {
	case 0:
		taken = true
	case 1:
		taken = c.flag(FlagZERO)
	case 2:
		taken = !c.flag(FlagZERO)
	case 3:
		taken = c.flag(FlagCARRY)
	case 4:
		taken = !c.flag(FlagCARRY)
	case 5:
		taken = c.flag(FlagZERO) || c.flag(FlagCARRY)
	case 6:
		taken = !(c.flag(FlagZERO) || c.flag(FlagCARRY))
	case 15: // CALL: unconditional with return-address push
		taken = true
		c.push(c.Reg[RegPC])
	default:
		c.crash()
		return
	}
	if taken {
		c.Reg[RegPC] = target
	}
	_ = wasAbs
}
