// Package input translates host key events into the single-byte
// guest keycode delivered through 0xFF02 and the KEYBOARD interrupt.
package input

// Modifier bits ORed into the low-6-bit key code.
const (
	ShiftBit uint8 = 1 << 6
	CtrlBit  uint8 = 1 << 7
)

// NoKey is the sentinel meaning "no pending key".
const NoKey uint8 = 0xFF

// unshiftedCodes maps a host key name to its unshifted low-6-bit code.
var unshiftedCodes = map[string]uint8{
	"space": 0,
	"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7, "h": 8,
	"i": 9, "j": 10, "k": 11, "l": 12, "m": 13, "n": 14, "o": 15,
	"p": 16, "q": 17, "r": 18, "s": 19, "t": 20, "u": 21, "v": 22,
	"w": 23, "x": 24, "y": 25, "z": 26,
	"0": 27, "1": 28, "2": 29, "3": 30, "4": 31,
	"5": 32, "6": 33, "7": 34, "8": 35, "9": 36,
	",": 37, ".": 38, ";": 39, "=": 40, "/": 41, "-": 42, "'": 43,
	"escape": 56, "up": 57, "down": 58, "left": 59, "right": 60,
	"return": 61, "backspace": 62,
}

// shiftedAliases maps a shifted-character key directly to its
// unshifted base key; the caller's shift state still forces the
// SHIFT bit, so these characters always arrive with it set.
var shiftedAliases = map[string]string{
	"<": ",", ">": ".", ":": ";", "+": "=", "?": "/", "_": "-", "\"": "'",
	"!": "1", "@": "2", "#": "3", "$": "4", "%": "5",
	"^": "6", "&": "7", "*": "8", "(": "9", ")": "0",
}

// Translator converts host key names plus modifier state into the
// cricket keycode byte.
type Translator struct{}

// NewTranslator constructs a Translator. It holds no state; the key
// table is fixed by the host key mapping.
func NewTranslator() *Translator { return &Translator{} }

// Translate returns the keycode for name under the given modifiers,
// and whether name is recognized.
func (Translator) Translate(name string, shift, ctrl bool) (uint8, bool) {
	if base, ok := shiftedAliases[name]; ok {
		name = base
		shift = true
	}
	code, ok := unshiftedCodes[name]
	if !ok {
		return 0, false
	}
	if shift {
		code |= ShiftBit
	}
	if ctrl {
		code |= CtrlBit
	}
	return code, true
}

// Pending tracks the single outstanding keycode awaiting delivery.
// Setting a new key always overwrites whatever was previously pending.
type Pending struct {
	key uint8
}

// NewPending constructs a Pending with no key outstanding.
func NewPending() *Pending { return &Pending{key: NoKey} }

// Set latches keycode, overwriting whatever was previously pending.
func (p *Pending) Set(keycode uint8) { p.key = keycode }

// Take returns the pending keycode and clears it, or reports false if
// none is outstanding.
func (p *Pending) Take() (uint8, bool) {
	if p.key == NoKey {
		return 0, false
	}
	k := p.key
	p.key = NoKey
	return k, true
}

// Peek reports the pending keycode without clearing it.
func (p *Pending) Peek() (uint8, bool) {
	if p.key == NoKey {
		return 0, false
	}
	return p.key, true
}
