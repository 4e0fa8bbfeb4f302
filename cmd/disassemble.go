package cmd

import (
	"github.com/ChainSafe/hexdis/renderer"
	"github.com/urfave/cli/v2"
)

func CreateDisassembleCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "disassemble",
		Usage:       "Writes the program as labelled assembly",
		Description: "Decodes one instruction word per line and writes labelled assembly source",
		ArgsUsage:   "[file]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			IDTLengthFlag,
			OutputPathFlag,
		},
	}
}

var DisassembleCommand = CreateDisassembleCommand(Disassemble)

func Disassemble(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	return run(ctx, renderer.FormatText, prof)
}
