// Package emulator wires the CPU, memory bus, PPU, and input
// translator into the frame-driver loop.
package emulator

import (
	"cricket/internal/clock"
	"cricket/internal/cpu"
	"cricket/internal/debug"
	"cricket/internal/input"
	"cricket/internal/memory"
	"cricket/internal/ppu"
	"cricket/internal/rom"
)

// KeyEvent is one host key press, already resolved to a name the
// input.Translator recognizes.
type KeyEvent struct {
	Name        string
	Shift, Ctrl bool
}

// InputSource delivers pending host key events once per loop iteration.
type InputSource interface {
	PollEvents() []KeyEvent
}

// VideoSink receives a completed frame. frame has ScreenWidth *
// ScreenHeight entries in row-major order.
type VideoSink interface {
	Present(frame []ppu.RGB)
}

// Emulator owns every guest component and drives them through one
// iteration of the frame loop per call to RunOnce.
type Emulator struct {
	CPU   *cpu.CPU
	Bus   *memory.Bus
	PPU   *ppu.PPU
	Input *input.Translator
	keys  *input.Pending

	ticker *clock.Ticker
	frame  []ppu.RGB

	Log *debug.Logger
}

// New constructs an Emulator from a loaded cartridge. The CPU and PPU
// boot to their power-on state.
func New(cart *rom.Cartridge, log *debug.Logger) *Emulator {
	p := ppu.New()
	bus := memory.NewBus(cart.Data[:], p, memoryLogger(log))
	c := cpu.New(bus, cpuLogger(log))

	return &Emulator{
		CPU:    c,
		Bus:    bus,
		PPU:    p,
		Input:  input.NewTranslator(),
		keys:   input.NewPending(),
		ticker: clock.NewTicker(),
		frame:  make([]ppu.RGB, ppu.ScreenWidth*ppu.ScreenHeight),
		Log:    log,
	}
}

func cpuLogger(l *debug.Logger) cpu.Logger {
	if l == nil {
		return nil
	}
	return debug.CPULogger{L: l}
}

func memoryLogger(l *debug.Logger) memory.Logger {
	if l == nil {
		return nil
	}
	return debug.MemoryLogger{L: l}
}

// RunOnce executes one iteration of the frame-driver loop:
// drain input, render a frame if due, apply the delayed interrupt
// enable, retry any undelivered key, then single-step the CPU.
func (e *Emulator) RunOnce(in InputSource, out VideoSink) {
	e.drainInput(in)

	if e.ticker.Due() {
		e.renderFrame(out)
		e.ticker.Advance()
	}

	e.CPU.ApplyPendingEnable()

	if key, ok := e.keys.Peek(); ok {
		if e.CPU.Interrupt(cpu.VectorKeyboard) {
			e.Bus.SetLastKey(key)
			e.keys.Take()
		}
	}

	if !e.CPU.Waiting() {
		e.CPU.Step()
	}
}

// Run drives RunOnce until the CPU clears RUN.
func (e *Emulator) Run(in InputSource, out VideoSink) {
	for e.CPU.Running() {
		e.RunOnce(in, out)
	}
}

func (e *Emulator) drainInput(in InputSource) {
	if in == nil {
		return
	}
	for _, evt := range in.PollEvents() {
		code, ok := e.Input.Translate(evt.Name, evt.Shift, evt.Ctrl)
		if !ok {
			continue
		}
		if e.CPU.Interrupt(cpu.VectorKeyboard) {
			e.Bus.SetLastKey(code)
		} else {
			e.keys.Set(code)
		}
	}
}

// renderFrame composites every scanline, firing HBLANK after each row
// and VBLANK once at the end. Each accepted interrupt runs guest code
// until the RETI re-entrancy guard has fired and been consumed.
func (e *Emulator) renderFrame(out VideoSink) {
	for y := 0; y < ppu.ScreenHeight; y++ {
		e.PPU.Scanline(y, e.frame[y*ppu.ScreenWidth:(y+1)*ppu.ScreenWidth])
		if e.CPU.Interrupt(cpu.VectorHBLANK) {
			e.runUntilReturn()
		}
	}

	if e.CPU.Interrupt(cpu.VectorVBLANK) {
		e.runUntilReturn()
	}

	if out != nil {
		out.Present(e.frame)
	}
}

// runUntilReturn steps the guest until one full instruction has run
// past the RETI that set INTERRUPT_ENABLE_NEXT, then converts the
// latch to INTERRUPT_ENABLE. This is what guarantees RETI's handler
// gets exactly one more instruction before a nested interrupt can be
// accepted.
func (e *Emulator) runUntilReturn() {
	seenNext := false
	for e.CPU.Running() {
		e.CPU.Step()
		if seenNext {
			e.CPU.ApplyPendingEnable()
			return
		}
		if e.CPU.Flag(cpu.FlagIENext) {
			seenNext = true
		}
	}
}
