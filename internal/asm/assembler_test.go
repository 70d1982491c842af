package asm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cricket/internal/emulator"
	"cricket/internal/rom"
)

func TestAssembleAllSupportedMnemonics(t *testing.T) {
	src := `
start:
    NOP
    MOV A, #0x1234
    MOV B, A
    LW C, [B]
    SW [B], C
    LB D, [B+4]
    SB [B+4], D
    PUSHR A
    POPR E
    ADD A, #1
    ADD A, B
    SUB A, #1
    UMUL A, B
    UDIV A, #2
    AND A, #0xFF
    OR A, B
    XOR A, #1
    NOT A
    NEG A
    INC A
    DEC A
    SHL A, #1
    SHR A, B
    UCMP A, #0x10
    SCMP A, B
    SMUL A, B
    SDIV A, #3
    UMOD A, #3
    SMOD A, B
    SAR A, #1
    ROL A, #1
    ROR A, B
    BIT A, #3
    ADC A, #1
    SBC A, B
    MULC A, #2
    SWAP A, B
    JMPR A
    HALT
    CLC
    DI
    EI
    RETI
    BEQ done
    BNE done
    BC done
    BNC done
    BLE done
    BGT done
    CALL subr
    JMP done
subr:
    RETURN
done:
    STOP
`
	res, err := AssembleSource(src, "all.asm", nil)
	require.NoError(t, err)
	require.Greater(t, res.Words, 0)
}

func TestAssembleLabelsAndBranchOffsetsRun(t *testing.T) {
	src := `
start:
    MOV A, #0
loop:
    ADD A, #1
    UCMP A, #5
    BNE loop
    STOP
`
	res, err := AssembleSource(src, "loop.asm", nil)
	require.NoError(t, err)

	cart, err := rom.Load(res.ROM[:])
	require.NoError(t, err)

	emu := emulator.New(cart, nil)
	for i := 0; i < 64 && emu.CPU.Running(); i++ {
		emu.CPU.Step()
	}
	require.Equal(t, uint16(5), emu.CPU.Reg[0])
}

func TestLabelsResolveToAbsoluteAddresses(t *testing.T) {
	src := `
start:
    JMP here
here:
    STOP
`
	res, err := AssembleSource(src, "jmp.asm", nil)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0104), res.Labels["HERE"])
}
