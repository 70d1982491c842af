package input

import "testing"

func TestTranslateUnshifted(t *testing.T) {
	tr := NewTranslator()
	code, ok := tr.Translate("a", false, false)
	if !ok || code != 1 {
		t.Fatalf("Translate(a) = %d, %v, want 1, true", code, ok)
	}
}

func TestTranslateShiftedAlias(t *testing.T) {
	tr := NewTranslator()
	code, ok := tr.Translate("<", false, false)
	if !ok {
		t.Fatalf("Translate(<) not recognized")
	}
	if code&ShiftBit == 0 {
		t.Fatalf("Translate(<) missing forced SHIFT bit: 0x%02X", code)
	}
	if code&0x3F != 37 {
		t.Fatalf("Translate(<) low bits = %d, want 37 (','s code)", code&0x3F)
	}
}

func TestTranslateCtrlModifier(t *testing.T) {
	tr := NewTranslator()
	code, ok := tr.Translate("c", false, true)
	if !ok {
		t.Fatalf("Translate(c) not recognized")
	}
	if code&CtrlBit == 0 {
		t.Fatalf("CTRL bit not set: 0x%02X", code)
	}
}

func TestUnknownKeyNotRecognized(t *testing.T) {
	tr := NewTranslator()
	if _, ok := tr.Translate("f13", false, false); ok {
		t.Fatalf("expected f13 to be unrecognized")
	}
}

func TestPendingOverwritesOlderKey(t *testing.T) {
	p := NewPending()
	if _, ok := p.Peek(); ok {
		t.Fatalf("new Pending should have no key")
	}

	p.Set(5)
	p.Set(9) // overwrite before delivery
	key, ok := p.Take()
	if !ok || key != 9 {
		t.Fatalf("Take() = %d, %v, want 9, true", key, ok)
	}

	if _, ok := p.Take(); ok {
		t.Fatalf("Take() after drain should report no key")
	}
}
