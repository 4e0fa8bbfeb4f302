package disassembler

import "github.com/ChainSafe/hexdis/isa"

// DefaultIDTLength is the number of leading words that form the interrupt
// descriptor table.
const DefaultIDTLength = 8

// Program is a decoded instruction stream. Addresses run through IDT and then
// Code without gaps, so the position in Instructions() is the address.
type Program struct {
	IDT  []*isa.Instruction
	Code []*isa.Instruction
}

// Instructions returns the IDT entries followed by the code.
func (p *Program) Instructions() []*isa.Instruction {
	all := make([]*isa.Instruction, 0, len(p.IDT)+len(p.Code))
	all = append(all, p.IDT...)
	return append(all, p.Code...)
}

// At returns the instruction at address, if the program has one.
func (p *Program) At(address int) (*isa.Instruction, bool) {
	if address < 0 {
		return nil, false
	}
	if address < len(p.IDT) {
		return p.IDT[address], true
	}
	address -= len(p.IDT)
	if address < len(p.Code) {
		return p.Code[address], true
	}
	return nil, false
}

// Len returns the total number of decoded instructions.
func (p *Program) Len() int {
	return len(p.IDT) + len(p.Code)
}
