// Package host wires cricket to a visible window: an SDL2 renderer
// presenting each completed frame, and keyboard events translated into
// emulator.KeyEvent values.
package host

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"cricket/internal/emulator"
	"cricket/internal/ppu"
)

// Host owns the SDL2 window, renderer, and texture, and satisfies both
// emulator.InputSource and emulator.VideoSink.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale   int
	running bool
	pixels  []byte
}

// New creates an SDL2 window sized to the PPU's screen resolution
// times scale, plus a streaming texture to present frames into.
func New(scale int) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("host: sdl init: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0") // nearest-neighbor

	width := int32(ppu.ScreenWidth * scale)
	height := int32(ppu.ScreenHeight * scale)

	window, err := sdl.CreateWindow(
		"cricket",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("host: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("host: create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		int32(ppu.ScreenWidth), int32(ppu.ScreenHeight),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("host: create texture: %w", err)
	}

	return &Host{
		window:   window,
		renderer: renderer,
		texture:  texture,
		scale:    scale,
		running:  true,
		pixels:   make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*3),
	}, nil
}

// Running reports whether the host has not yet seen a quit request.
func (h *Host) Running() bool { return h.running }

// PollEvents implements emulator.InputSource: it drains SDL's event
// queue and returns every key press as a translator-ready name, plus
// the current shift/ctrl modifier state.
func (h *Host) PollEvents() []emulator.KeyEvent {
	var events []emulator.KeyEvent
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			h.running = false
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			name, ok := keyName(e.Keysym.Sym)
			if !ok {
				continue
			}
			mod := sdl.GetModState()
			events = append(events, emulator.KeyEvent{
				Name:  name,
				Shift: mod&sdl.KMOD_SHIFT != 0,
				Ctrl:  mod&sdl.KMOD_CTRL != 0,
			})
		}
	}
	return events
}

// Present implements emulator.VideoSink: it converts the PPU's frame
// buffer to packed RGB24 and blits it to the window, scaled.
func (h *Host) Present(frame []ppu.RGB) {
	for i, px := range frame {
		h.pixels[i*3] = px.R
		h.pixels[i*3+1] = px.G
		h.pixels[i*3+2] = px.B
	}
	pitch := ppu.ScreenWidth * 3
	if err := h.texture.Update(nil, unsafe.Pointer(&h.pixels[0]), pitch); err != nil {
		return
	}

	h.renderer.Clear()
	dst := &sdl.Rect{X: 0, Y: 0, W: int32(ppu.ScreenWidth * h.scale), H: int32(ppu.ScreenHeight * h.scale)}
	h.renderer.Copy(h.texture, nil, dst)
	h.renderer.Present()
}

// Close tears down every SDL resource this Host owns.
func (h *Host) Close() {
	if h.texture != nil {
		h.texture.Destroy()
	}
	if h.renderer != nil {
		h.renderer.Destroy()
	}
	if h.window != nil {
		h.window.Destroy()
	}
	sdl.Quit()
}

// keyName maps an SDL keycode to the name input.Translator recognizes.
func keyName(key sdl.Keycode) (string, bool) {
	switch {
	case key >= sdl.K_a && key <= sdl.K_z:
		return string(rune('a' + (key - sdl.K_a))), true
	case key >= sdl.K_0 && key <= sdl.K_9:
		return string(rune('0' + (key - sdl.K_0))), true
	}
	switch key {
	case sdl.K_SPACE:
		return "space", true
	case sdl.K_COMMA:
		return ",", true
	case sdl.K_PERIOD:
		return ".", true
	case sdl.K_SEMICOLON:
		return ";", true
	case sdl.K_EQUALS:
		return "=", true
	case sdl.K_SLASH:
		return "/", true
	case sdl.K_MINUS:
		return "-", true
	case sdl.K_QUOTE:
		return "'", true
	case sdl.K_ESCAPE:
		return "escape", true
	case sdl.K_UP:
		return "up", true
	case sdl.K_DOWN:
		return "down", true
	case sdl.K_LEFT:
		return "left", true
	case sdl.K_RIGHT:
		return "right", true
	case sdl.K_RETURN:
		return "return", true
	case sdl.K_BACKSPACE:
		return "backspace", true
	default:
		return "", false
	}
}
