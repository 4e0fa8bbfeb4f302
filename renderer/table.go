package renderer

import (
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/jedib0t/go-pretty/v6/table"
)

// TableRenderer renders the decode records as a text table.
type TableRenderer struct{}

func NewTableRenderer() Renderer {
	return &TableRenderer{}
}

func (r *TableRenderer) Render(res *disassembler.Result, output io.Writer) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(output)
	tw.AppendHeader(table.Row{"Address", "Opcode", "Instruction", "Description"})

	for i, instr := range res.Program.Instructions() {
		if i == len(res.Program.IDT) && i > 0 {
			tw.AppendSeparator()
		}
		tw.AppendRow(table.Row{instr.HexAddress(), instr.Word, instr.Text(), instr.Description})
	}
	tw.Render()
	return nil
}

func (r *TableRenderer) Format() string {
	return FormatTable
}
