// Package disassembler turns raw instruction words into a labelled program.
//
// A Session carries all the state of one decode run: the IDT size, the label
// counters, the labels assigned so far and whether the program calls
// subroutines. Build a new Session for every run; nothing is shared between
// sessions.
package disassembler

import (
	"io"
	"log/slog"
)

// Session is the context of a single decode run.
type Session struct {
	IDTLength int

	counters       map[LabelKind]int
	labels         map[int]*Label
	hasSubroutines bool
}

// NewSession creates an empty session. A negative idtLength is treated as 0.
func NewSession(idtLength int) *Session {
	if idtLength < 0 {
		idtLength = 0
	}
	return &Session{
		IDTLength: idtLength,
		counters:  make(map[LabelKind]int),
		labels:    make(map[int]*Label),
	}
}

// HasSubroutines reports whether a decoded instruction was a subroutine call.
func (s *Session) HasSubroutines() bool {
	return s.hasSubroutines
}

// Result is the outcome of Disassemble.
type Result struct {
	Session     *Session
	Program     *Program
	Diagnostics []Diagnostic
}

// Err returns the decode error, if any.
func (r *Result) Err() error {
	return FirstError(r.Diagnostics)
}

// Warnings returns the non-fatal diagnostics.
func (r *Result) Warnings() []Diagnostic {
	warnings := make([]Diagnostic, 0)
	for _, d := range r.Diagnostics {
		if !d.IsError() {
			warnings = append(warnings, d)
		}
	}
	return warnings
}

// Disassemble decodes the words read from r in a fresh session.
func Disassemble(r io.Reader, idtLength int) *Result {
	s := NewSession(idtLength)
	prog, diags := s.Parse(r)
	slog.Debug("decoded program",
		"idt", len(prog.IDT),
		"code", len(prog.Code),
		"diagnostics", len(diags),
	)
	return &Result{
		Session:     s,
		Program:     prog,
		Diagnostics: diags,
	}
}
