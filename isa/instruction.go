package isa

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var wordRegex = regexp.MustCompile(fmt.Sprintf("^[0-9a-fA-F]{%d}$", WordLength))

// Instruction is a single decoded instruction word.
type Instruction struct {
	Address     int    // word address, not byte address
	Word        string // raw word as written in the input
	Opcode      Opcode
	Mnemonic    string
	Operands    string // operands shown after the mnemonic in assembly, if any
	Field       string // raw 6 digit operand field (b1 b2 b3)
	Description string
	Successors  []int  // fallthrough first, branch target second
	Comment     string // optional inline comment
}

// Decode decodes word into an instruction at the given address.
func Decode(word string, address int, comment string) (*Instruction, error) {
	if !wordRegex.MatchString(word) {
		return nil, &WordError{Word: word, Err: ErrInvalidWordFormat}
	}

	var b [4]string
	for i := range b {
		b[i] = word[i*2 : (i+1)*2]
	}

	code, err := strconv.ParseUint(b[0], 16, 8)
	if err != nil {
		return nil, &WordError{Word: word, Err: ErrInvalidWordFormat}
	}
	op := Opcode(code)
	info, ok := opcodes[op]
	if !ok {
		return nil, &OpcodeError{Byte: b[0], Err: ErrUnknownOpcode}
	}

	field := b[1] + b[2] + b[3]
	target, err := decodeTarget(field)
	if err != nil {
		return nil, &WordError{Word: word, Err: ErrInvalidWordFormat}
	}

	instr := &Instruction{
		Address:     address,
		Word:        word,
		Opcode:      op,
		Mnemonic:    info.mnemonic,
		Field:       field,
		Description: info.describe(b, target),
		Successors:  []int{address + 1},
		Comment:     comment,
	}

	switch op {
	case OpBUC, OpBSR:
		// the fallthrough is unreachable
		instr.Successors = []int{target}
	case OpBIC:
		instr.Successors = append(instr.Successors, target)
	case OpSETO, OpTSTI:
		instr.Operands = fmt.Sprintf("0x%s, 0x%s, 0x%s", b[1], b[2], b[3])
	}
	return instr, nil
}

// decodeTarget parses the 24-bit operand field and removes the bias. Small
// fields produce negative targets.
func decodeTarget(field string) (int, error) {
	v, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, err
	}
	return int(v) - TargetBias, nil
}

// Target returns the address written as the jump operand. It is the first
// successor when that is not the next address, otherwise the second successor
// of a branch. A jump or call to the next address has no operand.
func (i *Instruction) Target() (int, bool) {
	switch {
	case i.Jumps():
		return i.Successors[0], true
	case i.IsBranch():
		return i.Successors[1], true
	}
	return 0, false
}

// IsBranch reports whether the instruction has two successors.
func (i *Instruction) IsBranch() bool {
	return len(i.Successors) == 2
}

// IsCall reports whether the instruction is a subroutine call.
func (i *Instruction) IsCall() bool {
	return i.Opcode == OpBSR
}

// Jumps reports whether control never falls through to the next address.
func (i *Instruction) Jumps() bool {
	return i.Successors[0] != i.Address+1
}

// Text returns the upper-case listing form of the instruction, such as
// "BUC  000010" or "SETO 010203".
func (i *Instruction) Text() string {
	mnemonic := strings.ToUpper(i.Mnemonic)
	switch {
	case i.Opcode.HasTarget():
		return mnemonic + "  " + i.Field
	case i.Opcode.HasPortOperands():
		return mnemonic + " " + i.Field
	default:
		return mnemonic
	}
}

// HexAddress returns the address as eight upper-case hex digits.
func (i *Instruction) HexAddress() string {
	return fmt.Sprintf("%08X", i.Address)
}

func fixed(desc string) func([4]string, int) string {
	return func([4]string, int) string {
		return desc
	}
}

func targetf(format string) func([4]string, int) string {
	return func(_ [4]string, target int) string {
		return fmt.Sprintf(format, target)
	}
}

func describeSetOutputs(b [4]string, _ int) string {
	return fmt.Sprintf("Set outputs %s AND %s XOR %s", b[1], b[2], b[3])
}

func describeTestInput(b [4]string, _ int) string {
	// the port number is shown in decimal, the masks stay in hex
	port, _ := strconv.ParseUint(b[1], 16, 8)
	return fmt.Sprintf("Test input port %d AND %s XOR %s", port, b[2], b[3])
}
