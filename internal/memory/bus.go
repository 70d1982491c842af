// Package memory implements the guest address space: ROM, banked RAM,
// the PPU-owned register windows, and the host keyboard latch.
package memory

const (
	ramSize = 0x4000 // 16 KiB total guest RAM
	romMax  = 0x10000 // ROM images are zero-padded up to 64 KiB
)

// PPURegisters is the single owner of every PPU-addressable byte
// (palette RAM, tilemaps, OAM, pattern table, and the offset/scroll
// registers). The bus never touches PPU state directly; every CPU
// read and write of the PPU range goes through this interface.
type PPURegisters interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
}

// Logger receives diagnostics for out-of-range or misaligned accesses.
// These never change guest-visible state; a nil Logger is legal.
type Logger interface {
	Warnf(format string, args ...any)
}

// Bus is the cpu.Memory implementation that fans a guest address out
// to ROM, RAM, the PPU, or the keyboard latch per the memory map.
type Bus struct {
	ROM []byte // up to 64 KiB, zero-padded
	RAM [ramSize]byte

	PPU PPURegisters

	lastKey uint8
	Log     Logger
}

// NewBus wraps rom (copied and zero-padded to 64 KiB) and ppu into a
// Bus. lastKey starts at 0xFF, the "no pending key" sentinel.
func NewBus(rom []byte, ppu PPURegisters, log Logger) *Bus {
	b := &Bus{PPU: ppu, Log: log, lastKey: 0xFF}
	b.ROM = make([]byte, romMax)
	copy(b.ROM, rom)
	return b
}

// SetLastKey latches a keycode for the memory-mapped 0xFF02 register.
// The frame driver calls this when host input arrives.
func (b *Bus) SetLastKey(key uint8) { b.lastKey = key }

// LastKey returns the currently latched keycode.
func (b *Bus) LastKey() uint8 { return b.lastKey }

func (b *Bus) warnf(format string, args ...any) {
	if b.Log != nil {
		b.Log.Warnf(format, args...)
	}
}

// LoadByte implements cpu.Memory.
func (b *Bus) LoadByte(addr uint16, bank uint8) uint8 {
	switch {
	case addr < 0x4000:
		return b.ROM[addr]

	case addr < 0x8000:
		return b.ROM[b.romBanked(addr, bank)]

	case addr < 0xA000:
		return b.RAM[addr-0x8000]

	case addr < 0xC000:
		return b.RAM[b.ramBanked(addr, bank)]

	case addr >= 0xD600 && addr < 0xD7F9:
		b.warnf("memory: read from reserved address $%04X", addr)
		return 0

	case addr < 0xD800:
		if b.PPU != nil {
			return b.PPU.ReadByte(addr)
		}
		return 0

	case addr == 0xFF02:
		return b.lastKey

	default:
		return 0
	}
}

// StoreByte implements cpu.Memory. Writes outside a writable range are
// diagnostics only: guest state must not change.
func (b *Bus) StoreByte(addr uint16, bank uint8, value uint8) {
	switch {
	case addr < 0x8000:
		b.warnf("memory: write to read-only ROM at $%04X", addr)

	case addr < 0xA000:
		b.RAM[addr-0x8000] = value

	case addr < 0xC000:
		b.RAM[b.ramBanked(addr, bank)] = value

	case addr >= 0xD600 && addr < 0xD7F9:
		b.warnf("memory: write to reserved address $%04X", addr)

	case addr < 0xD800:
		if b.PPU != nil {
			b.PPU.WriteByte(addr, value)
		}

	case addr == 0xFF02:
		b.warnf("memory: write to read-only last-key register")

	default:
		b.warnf("memory: write to reserved address $%04X", addr)
	}
}

// LoadWord implements cpu.Memory. Words are big-endian (high byte at
// the lower address). An odd address is a diagnostic that returns zero
// with no partial access.
func (b *Bus) LoadWord(addr uint16, bank uint8) uint16 {
	if addr&1 != 0 {
		b.warnf("memory: unaligned word load at $%04X", addr)
		return 0
	}
	hi := b.LoadByte(addr, bank)
	lo := b.LoadByte(addr+1, bank)
	return uint16(hi)<<8 | uint16(lo)
}

// StoreWord implements cpu.Memory.
func (b *Bus) StoreWord(addr uint16, bank uint8, value uint16) {
	if addr&1 != 0 {
		b.warnf("memory: unaligned word store at $%04X", addr)
		return
	}
	b.StoreByte(addr, bank, uint8(value>>8))
	b.StoreByte(addr+1, bank, uint8(value))
}

// romBanked resolves a 0x4000-0x7FFF access to its physical ROM offset.
func (b *Bus) romBanked(addr uint16, bank uint8) int {
	off := uint32(addr) + uint32(bank)*0x4000
	return int(off % uint32(len(b.ROM)))
}

// ramBanked resolves a 0xA000-0xBFFF access to its physical RAM offset.
func (b *Bus) ramBanked(addr uint16, bank uint8) int {
	off := uint32(addr-0xA000) + uint32(bank)*0x2000
	return int(off % ramSize)
}
