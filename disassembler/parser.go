package disassembler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/hexdis/isa"
	"github.com/ChainSafe/hexdis/translate"
)

var f = translate.From

// Parse decodes one word per non-blank line of r. Blank lines are skipped and
// take no address. The first IDTLength words form the IDT, the rest the code.
//
// Decoding stops at the first bad word. The instructions decoded before it are
// kept and the returned diagnostics carry a single error naming the line.
func (s *Session) Parse(r io.Reader) (*Program, []Diagnostic) {
	prog := &Program{
		IDT:  make([]*isa.Instruction, 0),
		Code: make([]*isa.Instruction, 0),
	}
	diags := make([]Diagnostic, 0)

	address := 0
	lineNo := 0
	scanner := bufio.NewScanner(r)
	for ; scanner.Scan(); lineNo++ {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		var comment string
		if address < s.IDTLength {
			comment = fmt.Sprintf("Interrupt handler %d", address)
		}

		instr, err := isa.Decode(word, address, comment)
		if err != nil {
			diags = append(diags, newError(&LineError{Line: lineNo, Err: err}, lineNo))
			return prog, s.finish(diags)
		}
		if instr.IsCall() {
			s.hasSubroutines = true
		}

		if address < s.IDTLength {
			prog.IDT = append(prog.IDT, instr)
		} else {
			prog.Code = append(prog.Code, instr)
		}
		address++
	}
	if err := scanner.Err(); err != nil {
		err = fmt.Errorf("error reading input: %w", err)
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Message:  err.Error(),
			Err:      err,
		})
	}
	return prog, s.finish(diags)
}

func (s *Session) finish(diags []Diagnostic) []Diagnostic {
	if s.hasSubroutines {
		diags = append(diags, newWarning(
			f("Program contains subroutine calls, the control flow graph cannot be drawn"),
		))
	}
	return diags
}
