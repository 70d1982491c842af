package main

import (
	"flag"
	"fmt"
	"os"

	"cricket/internal/debug"
	"cricket/internal/emulator"
	"cricket/internal/host"
	"cricket/internal/rom"
)

func main() {
	scale := flag.Int("scale", 4, "display scale (1-6)")
	enableLog := flag.Bool("log", false, "enable diagnostic logging to stderr on exit")
	step := flag.Bool("step", false, "single-step: print PC before every frame-loop iteration")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: cricket [-scale 1-6] [-log] [-step] <path-to-rom>")
		os.Exit(0)
	}
	romPath := flag.Arg(0)
	if *scale < 1 || *scale > 6 {
		fmt.Fprintln(os.Stderr, "error: scale must be between 1 and 6")
		os.Exit(1)
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading ROM file: %v\n", err)
		os.Exit(1)
	}
	cart, err := rom.Load(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading ROM: %v\n", err)
		os.Exit(1)
	}

	var log *debug.Logger
	if *enableLog {
		log = debug.NewLogger(10000)
		log.Enable(debug.ComponentCPU, true)
		log.Enable(debug.ComponentPPU, true)
		log.Enable(debug.ComponentMemory, true)
		log.Enable(debug.ComponentInput, true)
		log.SetMinLevel(debug.LogLevelWarning)
		defer func() {
			log.Shutdown()
			for _, e := range log.GetEntries() {
				fmt.Fprintln(os.Stderr, e.Format())
			}
		}()
	}

	emu := emulator.New(cart, log)
	fmt.Printf("cricket: %s\n", cart.Title)

	h, err := host.New(*scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening display: %v\n", err)
		os.Exit(-1)
	}
	defer h.Close()

	for h.Running() && emu.CPU.Running() {
		if *step {
			fmt.Printf("PC=%04X\n", emu.CPU.PC())
		}
		emu.RunOnce(h, h)
	}

	if emu.CPU.Crashed() {
		fmt.Fprintln(os.Stderr, "cricket: CPU crashed")
		os.Exit(1)
	}
}
