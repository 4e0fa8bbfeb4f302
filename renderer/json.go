package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/isa"
)

// Record is the decode record of one instruction.
type Record struct {
	Address     string `json:"address"`
	Word        string `json:"word"`
	Instruction string `json:"instruction"`
	Description string `json:"description"`
	Mnemonic    string `json:"mnemonic"`
	Operands    string `json:"operands,omitempty"`
	Successors  []int  `json:"successors"`
	Label       string `json:"label,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

// Report is the JSON document written by JSONRenderer.
type Report struct {
	IDT         []Record                  `json:"idt"`
	Code        []Record                  `json:"code"`
	Diagnostics []disassembler.Diagnostic `json:"diagnostics"`
}

// JSONRenderer renders decode records in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(res *disassembler.Result, output io.Writer) error {
	res.Session.Resolve(res.Program)
	report := Report{
		IDT:         records(res.Session, res.Program.IDT),
		Code:        records(res.Session, res.Program.Code),
		Diagnostics: res.Diagnostics,
	}
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (r *JSONRenderer) Format() string {
	return FormatJSON
}

// records converts instructions into decode records.
func records(s *disassembler.Session, instrs []*isa.Instruction) []Record {
	out := make([]Record, 0, len(instrs))
	for _, instr := range instrs {
		rec := Record{
			Address:     instr.HexAddress(),
			Word:        instr.Word,
			Instruction: instr.Text(),
			Description: instr.Description,
			Mnemonic:    instr.Mnemonic,
			Operands:    instr.Operands,
			Successors:  instr.Successors,
			Comment:     instr.Comment,
		}
		if label, ok := s.Label(instr.Address); ok {
			rec.Label = label.Name
		}
		out = append(out, rec)
	}
	return out
}
