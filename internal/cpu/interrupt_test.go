package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterruptRejectedWhenMasked(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(FlagIE, false)
	ok := c.Interrupt(VectorVBLANK)
	require.False(t, ok)
	require.Equal(t, uint16(bootPC), c.PC())
}

func TestInterruptAcceptedPushesPCAndJumps(t *testing.T) {
	c, mem := newTestCPU()
	sp0 := c.SP()
	ok := c.Interrupt(VectorKeyboard)
	require.True(t, ok)
	require.Equal(t, VectorKeyboard, c.PC())
	require.False(t, c.flag(FlagIE))
	require.Equal(t, sp0-2, c.SP())
	require.Equal(t, uint16(bootPC), mem.LoadWord(c.SP(), c.DB()))
}

func TestReentrancyGuardDelaysEnable(t *testing.T) {
	c, mem := newTestCPU()
	c.Interrupt(VectorVBLANK)
	mem.StoreWord(c.PC(), 0, 0x00AB) // RETI
	c.Step()
	require.True(t, c.flag(FlagIENext))
	require.False(t, c.flag(FlagIE))

	c.ApplyPendingEnable()
	require.True(t, c.flag(FlagIE))
}
