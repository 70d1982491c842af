// Package rom loads a cricket ROM image: a flat, zero-padded 64 KiB
// byte array with a title string at a fixed offset and a fixed entry
// point.
package rom

import "fmt"

const (
	// Size is the guest address space's ROM window; images larger
	// than this are rejected, smaller ones are zero-padded.
	Size = 0x10000

	titleOffset = 2
	titleEnd    = 32
)

// Cartridge holds a loaded ROM image and its derived metadata.
type Cartridge struct {
	Data  [Size]byte
	Title string
}

// Load parses data into a Cartridge. Images shorter than Size are
// zero-padded; longer ones are rejected (cricket has no bank-select
// header, unlike the richer consoles this design is descended from).
func Load(data []byte) (*Cartridge, error) {
	if len(data) > Size {
		return nil, fmt.Errorf("rom: image is %d bytes, exceeds %d byte window", len(data), Size)
	}

	c := &Cartridge{}
	copy(c.Data[:], data)
	c.Title = extractTitle(c.Data[titleOffset:titleEnd])
	return c, nil
}

// extractTitle reads a NUL-padded ASCII string out of the ROM's title
// field, stopping at the first NUL byte.
func extractTitle(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
