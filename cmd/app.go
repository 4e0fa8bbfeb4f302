package cmd

import (
	"log/slog"

	"github.com/urfave/cli/v2"
)

// NewApp builds the hexdis command line application.
func NewApp(name string) *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Usage = "Instruction Word Disassembler"
	app.Description = "Decodes 8 hex digit instruction words into assembly, decode records and flowcharts"
	app.Flags = []cli.Flag{VerboseFlag}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool(VerboseFlag.Name) {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		DisassembleCommand,
		DecodeCommand,
		FlowchartCommand,
	}
	return app
}
