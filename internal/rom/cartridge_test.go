package rom

import "testing"

func TestLoadPadsShortImage(t *testing.T) {
	c, err := Load([]byte{0xAB, 0xCD})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Data[0] != 0xAB || c.Data[1] != 0xCD {
		t.Fatalf("leading bytes not preserved")
	}
	if c.Data[Size-1] != 0 {
		t.Fatalf("tail not zero-padded")
	}
}

func TestLoadRejectsOversizedImage(t *testing.T) {
	if _, err := Load(make([]byte, Size+1)); err == nil {
		t.Fatalf("expected error for oversized ROM")
	}
}

func TestExtractTitle(t *testing.T) {
	img := make([]byte, 64)
	copy(img[titleOffset:], "CRICKET DEMO")
	c, err := Load(img)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Title != "CRICKET DEMO" {
		t.Fatalf("Title = %q, want %q", c.Title, "CRICKET DEMO")
	}
}

func TestExtractTitleFullWidthNoNul(t *testing.T) {
	img := make([]byte, 64)
	for i := titleOffset; i < titleEnd; i++ {
		img[i] = 'X'
	}
	c, err := Load(img)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Title) != titleEnd-titleOffset {
		t.Fatalf("Title len = %d, want %d", len(c.Title), titleEnd-titleOffset)
	}
}
