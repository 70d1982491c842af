package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cricket/internal/asm"
)

func main() {
	origin := flag.Uint("origin", 0x0100, "assembly origin address (hex or decimal)")
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--origin 0x0100] <input.casm> <output.rom>\n", os.Args[0])
		os.Exit(1)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	res, err := asm.AssembleFile(in, &asm.Options{Origin: uint16(*origin)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembler error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, res.ROM[:], 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Assembled %s -> %s\n", filepath.Base(in), filepath.Base(out))
	fmt.Printf("Code words: %d (%d bytes)\n", res.Words, res.Words*2)
}
