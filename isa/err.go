package isa

import (
	"errors"

	"github.com/ChainSafe/hexdis/translate"
)

var f = translate.From

var (
	ErrInvalidWordFormat = errors.New(f("invalid instruction"))
	ErrUnknownOpcode     = errors.New(f("invalid opcode"))
)

// WordError reports a word that is not exactly eight hex digits.
type WordError struct {
	Word string
	Err  error
}

func (err *WordError) Error() string {
	return f("%v '%v'", err.Err, err.Word)
}

func (err *WordError) Unwrap() error {
	return err.Err
}

// OpcodeError reports an opcode byte outside the instruction set.
type OpcodeError struct {
	Byte string
	Err  error
}

func (err *OpcodeError) Error() string {
	return f("%v '%v'", err.Err, err.Byte)
}

func (err *OpcodeError) Unwrap() error {
	return err.Err
}
