package memory

import "testing"

type fakePPU struct {
	reads  map[uint16]uint8
	writes map[uint16]uint8
}

func newFakePPU() *fakePPU {
	return &fakePPU{reads: map[uint16]uint8{}, writes: map[uint16]uint8{}}
}

func (p *fakePPU) ReadByte(addr uint16) uint8 { return p.reads[addr] }
func (p *fakePPU) WriteByte(addr uint16, value uint8) {
	p.writes[addr] = value
}

func TestROMReadOnly(t *testing.T) {
	rom := make([]byte, 0x10000)
	rom[0x10] = 0xAB
	b := NewBus(rom, nil, nil)

	if got := b.LoadByte(0x10, 0); got != 0xAB {
		t.Fatalf("LoadByte(0x10) = 0x%02X, want 0xAB", got)
	}
	b.StoreByte(0x10, 0, 0xFF)
	if got := b.LoadByte(0x10, 0); got != 0xAB {
		t.Fatalf("ROM store at 0x10 mutated state: got 0x%02X", got)
	}
}

func TestBankedROMWindow(t *testing.T) {
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0x7E
	b := NewBus(rom, nil, nil)

	if got := b.LoadByte(0x4000, 1); got != 0x7E {
		t.Fatalf("banked ROM read = 0x%02X, want 0x7E", got)
	}
}

func TestRAMUnbankedAndBanked(t *testing.T) {
	b := NewBus(make([]byte, 0x10000), nil, nil)

	b.StoreByte(0x8000, 0, 0x11)
	if got := b.LoadByte(0x8000, 0); got != 0x11 {
		t.Fatalf("RAM store/load mismatch: got 0x%02X", got)
	}

	b.StoreByte(0xA000, 0, 0x22)
	b.StoreByte(0xA000, 1, 0x33)
	if got := b.LoadByte(0xA000, 0); got != 0x22 {
		t.Fatalf("banked RAM bank 0 = 0x%02X, want 0x22", got)
	}
	if got := b.LoadByte(0xA000, 1); got != 0x33 {
		t.Fatalf("banked RAM bank 1 = 0x%02X, want 0x33", got)
	}
}

func TestBigEndianWordStoreThenByteLoads(t *testing.T) {
	b := NewBus(make([]byte, 0x10000), nil, nil)
	b.StoreWord(0x8000, 0, 0x1234)

	if got := b.LoadByte(0x8000, 0); got != 0x12 {
		t.Fatalf("high byte = 0x%02X, want 0x12", got)
	}
	if got := b.LoadByte(0x8001, 0); got != 0x34 {
		t.Fatalf("low byte = 0x%02X, want 0x34", got)
	}
}

func TestUnalignedWordAccessIsInert(t *testing.T) {
	b := NewBus(make([]byte, 0x10000), nil, nil)
	b.StoreWord(0x8000, 0, 0xBEEF)

	b.StoreWord(0x8001, 0, 0xDEAD)
	if got := b.LoadWord(0x8000, 0); got != 0xBEEF {
		t.Fatalf("unaligned store mutated state: got 0x%04X", got)
	}
	if got := b.LoadWord(0x8001, 0); got != 0 {
		t.Fatalf("unaligned load = 0x%04X, want 0", got)
	}
}

func TestPPURangeRoutedToHandler(t *testing.T) {
	ppu := newFakePPU()
	b := NewBus(make([]byte, 0x10000), ppu, nil)

	b.StoreByte(0xC000, 0, 0x05)
	if ppu.writes[0xC000] != 0x05 {
		t.Fatalf("PPU write not routed, got %v", ppu.writes)
	}

	ppu.reads[0xD400] = 0x9A
	if got := b.LoadByte(0xD400, 0); got != 0x9A {
		t.Fatalf("PPU read = 0x%02X, want 0x9A", got)
	}
}

func TestLastKeyLatchIsReadOnly(t *testing.T) {
	b := NewBus(make([]byte, 0x10000), nil, nil)
	if got := b.LoadByte(0xFF02, 0); got != 0xFF {
		t.Fatalf("initial last-key = 0x%02X, want 0xFF (none pending)", got)
	}

	b.SetLastKey(5)
	if got := b.LoadByte(0xFF02, 0); got != 5 {
		t.Fatalf("last-key after SetLastKey = %d, want 5", got)
	}

	b.StoreByte(0xFF02, 0, 99)
	if got := b.LoadByte(0xFF02, 0); got != 5 {
		t.Fatalf("write to 0xFF02 mutated state: got %d", got)
	}
}
