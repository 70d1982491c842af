package debug

import "testing"

func waitDrain(l *Logger) {
	l.Shutdown()
}

func TestDisabledComponentDropsEntries(t *testing.T) {
	l := NewLogger(100)
	l.Log(ComponentCPU, LogLevelWarning, "should be dropped")
	waitDrain(l)
	if len(l.GetEntries()) != 0 {
		t.Fatalf("expected no entries for disabled component")
	}
}

func TestEnabledComponentRecordsEntry(t *testing.T) {
	l := NewLogger(100)
	l.Enable(ComponentCPU, true)
	l.Log(ComponentCPU, LogLevelWarning, "decode error at $0100")
	waitDrain(l)

	entries := l.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Component != ComponentCPU {
		t.Fatalf("entry component = %s, want CPU", entries[0].Component)
	}
}

func TestRingBufferWraps(t *testing.T) {
	l := NewLogger(100)
	l.Enable(ComponentSystem, true)
	for i := 0; i < 150; i++ {
		l.Log(ComponentSystem, LogLevelInfo, "tick")
	}
	waitDrain(l)
	if got := len(l.GetEntries()); got != 100 {
		t.Fatalf("ring buffer holds %d entries, want 100", got)
	}
}

func TestCPULoggerAdapterTagsComponent(t *testing.T) {
	l := NewLogger(100)
	l.Enable(ComponentCPU, true)
	adapter := CPULogger{L: l}
	adapter.Warnf("crash at pc=%04X", 0x1234)
	waitDrain(l)

	entries := l.GetEntries()
	if len(entries) != 1 || entries[0].Component != ComponentCPU {
		t.Fatalf("CPULogger did not tag entry with ComponentCPU: %+v", entries)
	}
}
