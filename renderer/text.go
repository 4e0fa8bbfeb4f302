package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/isa"
)

const (
	indent        = "        "
	commentColumn = 30
)

// TextRenderer writes the program as labelled assembly source.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render resolves every jump target first so that a label referenced before
// its definition is known when the referencing line is written. The second
// pass only reads labels.
func (r *TextRenderer) Render(res *disassembler.Result, output io.Writer) error {
	s, p := res.Session, res.Program
	s.Resolve(p)

	var asm strings.Builder

	// Header Section
	writeComment(&asm, "Generated assembly, do not edit.")
	writeComment(&asm, "Decoded from raw instruction words by hexdis.")
	writeComment(&asm, "")
	asm.WriteString("\n")

	asm.WriteString(".data\n")
	for _, instr := range p.IDT {
		writeInstruction(&asm, s, instr)
	}
	asm.WriteString("\n")

	asm.WriteString(".text\n")
	for _, instr := range p.Code {
		writeInstruction(&asm, s, instr)
	}
	asm.WriteString("\n")

	writeComment(&asm, "End of program code")

	_, err := output.Write([]byte(asm.String()))
	return err
}

func writeComment(asm *strings.Builder, text string) {
	if text == "" {
		asm.WriteString(";;\n")
		return
	}
	asm.WriteString(fmt.Sprintf(";; %s\n", text))
}

func writeInstruction(asm *strings.Builder, s *disassembler.Session, instr *isa.Instruction) {
	if label, ok := s.Label(instr.Address); ok {
		asm.WriteString(label.String())
		asm.WriteString("\n")
	}

	line := indent + instr.Mnemonic
	if target, ok := s.TargetName(instr); ok {
		line += "  " + target
	} else if instr.Operands != "" {
		line += " " + instr.Operands
	}
	if instr.Comment != "" {
		line = fmt.Sprintf("%-*s ; %s", commentColumn, line, instr.Comment)
	}
	asm.WriteString(line)
	asm.WriteString("\n")
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return FormatText
}
