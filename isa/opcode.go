// Package isa decodes the 32-bit instruction words of the toy controller
// instruction set.
//
// Every word is four bytes written as eight hex digits. The first byte is the
// opcode, the remaining three are operands. Jump and call instructions encode
// their target as a 24-bit field biased by TargetBias.
package isa

// Opcode is the first byte of an instruction word.
type Opcode uint8

const (
	OpIUC  Opcode = iota // no operation
	OpHUC                // terminate
	OpBUC                // unconditional jump
	OpBIC                // conditional jump
	OpSETO               // set outputs
	OpTSTI               // test input
	OpBSR                // call subroutine
	OpRSR                // return from subroutine
	OpRIR                // return from interrupt
	OpSEI                // enable interrupts
	OpCLI                // disable interrupts
)

// TargetBias is subtracted from the encoded 24-bit target field.
const TargetBias = 8

// WordLength is the number of hex digits in an instruction word.
const WordLength = 8

type opcodeInfo struct {
	mnemonic string
	// describe builds the human readable description from the operand bytes
	// and the decoded target.
	describe func(b [4]string, target int) string
}

var opcodes = map[Opcode]opcodeInfo{
	OpIUC:  {mnemonic: "iuc", describe: fixed("No operation")},
	OpHUC:  {mnemonic: "huc", describe: fixed("Terminate")},
	OpBUC:  {mnemonic: "buc", describe: targetf("Jump to %d")},
	OpBIC:  {mnemonic: "bic", describe: targetf("Jump to %d if condition flag is set")},
	OpSETO: {mnemonic: "seto", describe: describeSetOutputs},
	OpTSTI: {mnemonic: "tsti", describe: describeTestInput},
	OpBSR:  {mnemonic: "bsr", describe: targetf("Call subroutine %d")},
	OpRSR:  {mnemonic: "rsr", describe: fixed("Return from subroutine")},
	OpRIR:  {mnemonic: "rir", describe: fixed("Return from interrupt")},
	OpSEI:  {mnemonic: "sei", describe: fixed("Enable interrupts")},
	OpCLI:  {mnemonic: "cli", describe: fixed("Disable interrupts")},
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.mnemonic
	}
	return "???"
}

// Valid reports whether op is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// HasTarget reports whether the operand field encodes a jump target.
func (op Opcode) HasTarget() bool {
	return op == OpBUC || op == OpBIC || op == OpBSR
}

// HasPortOperands reports whether the three operand bytes are shown as
// separate immediates.
func (op Opcode) HasPortOperands() bool {
	return op == OpSETO || op == OpTSTI
}
