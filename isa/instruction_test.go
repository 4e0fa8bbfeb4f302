package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOpcodes(t *testing.T) {
	cases := map[string]struct {
		word        string
		address     int
		mnemonic    string
		text        string
		operands    string
		description string
		successors  []int
	}{
		"iuc": {"00000000", 0, "iuc", "IUC", "", "No operation", []int{1}},
		"huc": {"01000000", 4, "huc", "HUC", "", "Terminate", []int{5}},
		"buc": {"02000010", 0, "buc", "BUC  000010", "", "Jump to 8", []int{8}},
		"bic": {"03000010", 0, "bic", "BIC  000010", "", "Jump to 8 if condition flag is set", []int{1, 8}},
		"seto": {"040a0b0c", 2, "seto", "SETO 0a0b0c", "0x0a, 0x0b, 0x0c",
			"Set outputs 0a AND 0b XOR 0c", []int{3}},
		"tsti": {"0510ff00", 3, "tsti", "TSTI 10ff00", "0x10, 0xff, 0x00",
			"Test input port 16 AND ff XOR 00", []int{4}},
		"bsr": {"0600000c", 9, "bsr", "BSR  00000c", "", "Call subroutine 4", []int{4}},
		"rsr": {"07000000", 1, "rsr", "RSR", "", "Return from subroutine", []int{2}},
		"rir": {"08000000", 1, "rir", "RIR", "", "Return from interrupt", []int{2}},
		"sei": {"09000000", 1, "sei", "SEI", "", "Enable interrupts", []int{2}},
		"cli": {"0A000000", 1, "cli", "CLI", "", "Disable interrupts", []int{2}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			instr, err := Decode(tc.word, tc.address, "")
			require.NoError(t, err)

			assert.Equal(t, tc.address, instr.Address)
			assert.Equal(t, tc.word, instr.Word)
			assert.Equal(t, tc.mnemonic, instr.Mnemonic)
			assert.Equal(t, tc.mnemonic, instr.Opcode.String())
			assert.Equal(t, tc.text, instr.Text())
			assert.Equal(t, tc.operands, instr.Operands)
			assert.Equal(t, tc.description, instr.Description)
			assert.Equal(t, tc.successors, instr.Successors)
		})
	}
}

func TestDecodeTargetBias(t *testing.T) {
	instr, err := Decode("02000000", 5, "")
	require.NoError(t, err)
	assert.Equal(t, []int{-8}, instr.Successors)
	assert.True(t, instr.Jumps())

	target, ok := instr.Target()
	assert.True(t, ok)
	assert.Equal(t, -8, target)

	instr, err = Decode("03ffffff", 0, "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0xffffff - TargetBias}, instr.Successors)
	assert.True(t, instr.IsBranch())
	assert.False(t, instr.Jumps())
}

func TestTargetOfNextAddress(t *testing.T) {
	instr, err := Decode("02000009", 0, "")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, instr.Successors)
	_, ok := instr.Target()
	assert.False(t, ok)

	instr, err = Decode("06000010", 7, "")
	require.NoError(t, err)
	_, ok = instr.Target()
	assert.False(t, ok)

	// a branch to the next address still names its target
	instr, err = Decode("03000009", 0, "")
	require.NoError(t, err)
	target, ok := instr.Target()
	assert.True(t, ok)
	assert.Equal(t, 1, target)
}

func TestDecodeComment(t *testing.T) {
	instr, err := Decode("09000000", 0, "Interrupt handler 0")
	require.NoError(t, err)
	assert.Equal(t, "Interrupt handler 0", instr.Comment)
	assert.Equal(t, "00000000", instr.HexAddress())

	_, ok := instr.Target()
	assert.False(t, ok)
	assert.False(t, instr.IsCall())
}

func TestDecodeIsPure(t *testing.T) {
	first, err := Decode("03000010", 7, "")
	require.NoError(t, err)
	second, err := Decode("03000010", 7, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeInvalidWord(t *testing.T) {
	for _, word := range []string{"", "ZZZZZZZZ", "0000000", "000000000", " 0000000", "0x000000"} {
		instr, err := Decode(word, 0, "")
		assert.Nil(t, instr, word)
		assert.True(t, errors.Is(err, ErrInvalidWordFormat), word)

		var wordErr *WordError
		if assert.True(t, errors.As(err, &wordErr), word) {
			assert.Equal(t, word, wordErr.Word)
		}
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	for _, word := range []string{"0b000000", "FF000000", "10000000"} {
		instr, err := Decode(word, 0, "")
		assert.Nil(t, instr, word)
		assert.True(t, errors.Is(err, ErrUnknownOpcode), word)

		var opErr *OpcodeError
		if assert.True(t, errors.As(err, &opErr), word) {
			assert.Equal(t, word[:2], opErr.Byte)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "bsr", OpBSR.String())
	assert.True(t, OpCLI.Valid())
	assert.False(t, Opcode(11).Valid())
	assert.Equal(t, "???", Opcode(11).String())
}
