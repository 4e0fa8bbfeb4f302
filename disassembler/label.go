package disassembler

import (
	"fmt"
	"log/slog"

	"github.com/ChainSafe/hexdis/isa"
)

// LabelKind selects the prefix of a generated label name.
type LabelKind int

const (
	KindAuto LabelKind = iota // derive the kind from the labelled instruction
	KindPlain
	KindRoutine
	KindInterruptHandler
)

const (
	InterruptVectorsLabel = "interrupt_vectors"
	StartLabel            = "start"
)

var kindPrefix = map[LabelKind]string{
	KindPlain:            "label",
	KindRoutine:          "subroutine",
	KindInterruptHandler: "irq",
}

func (k LabelKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindRoutine:
		return "routine"
	case KindInterruptHandler:
		return "interrupt"
	}
	return "auto"
}

// Label is a symbolic name attached to an instruction address.
type Label struct {
	Kind LabelKind
	Name string
}

func (l *Label) String() string {
	return l.Name + ":"
}

// LabelFor returns the label of instr, creating it on first use. Once created
// a label keeps its kind and name; a later request for another kind gets the
// existing label back.
func (s *Session) LabelFor(instr *isa.Instruction, kind LabelKind) *Label {
	if label, ok := s.labels[instr.Address]; ok {
		return label
	}

	if kind == KindAuto {
		switch {
		case instr.Address < s.IDTLength:
			kind = KindInterruptHandler
		case instr.IsCall():
			kind = KindRoutine
		default:
			kind = KindPlain
		}
	}

	label := &Label{
		Kind: kind,
		Name: fmt.Sprintf("%s%d", kindPrefix[kind], s.counters[kind]),
	}
	s.counters[kind]++
	s.labels[instr.Address] = label
	slog.Debug("created label", "address", instr.Address, "name", label.Name, "kind", kind)
	return label
}

// Label returns the label assigned to address without creating one.
func (s *Session) Label(address int) (*Label, bool) {
	label, ok := s.labels[address]
	return label, ok
}

// setFixedLabel names instr without consuming a counter slot.
func (s *Session) setFixedLabel(instr *isa.Instruction, kind LabelKind, name string) {
	if _, ok := s.labels[instr.Address]; ok {
		return
	}
	s.labels[instr.Address] = &Label{Kind: kind, Name: name}
}

// TargetKind is the kind requested for the jump target of instr: jumps out of
// the IDT name interrupt handlers, calls name routines.
func (s *Session) TargetKind(instr *isa.Instruction) LabelKind {
	switch {
	case instr.Address < s.IDTLength:
		return KindInterruptHandler
	case instr.IsCall():
		return KindRoutine
	default:
		return KindPlain
	}
}

// Resolve assigns every label the program needs. It walks the IDT and then
// the code in address order so the generated names only depend on the input.
// Calling it again on the same program creates nothing new.
func (s *Session) Resolve(p *Program) {
	if len(p.IDT) > 0 {
		s.setFixedLabel(p.IDT[0], KindInterruptHandler, InterruptVectorsLabel)
	}
	if len(p.Code) > 0 {
		s.setFixedLabel(p.Code[0], KindPlain, StartLabel)
	}

	for _, instr := range p.Instructions() {
		target, ok := instr.Target()
		if !ok {
			continue
		}
		if dest, ok := p.At(target); ok {
			s.LabelFor(dest, s.TargetKind(instr))
		}
	}
}

// TargetName returns the operand text for the jump target of instr: the
// target's label when one exists, otherwise the raw target address. It
// reports false when instr is written without an operand.
func (s *Session) TargetName(instr *isa.Instruction) (string, bool) {
	target, ok := instr.Target()
	if !ok {
		return "", false
	}
	if label, ok := s.Label(target); ok {
		return label.Name, true
	}
	return fmt.Sprintf("%d", target), true
}
