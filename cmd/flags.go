// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/profile"
	"github.com/ChainSafe/hexdis/renderer"
	"github.com/urfave/cli/v2"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the controller profile config file",
		Required: false,
	}
	IDTLengthFlag = &cli.IntFlag{
		Name:     "idt-length",
		Usage:    "Number of leading words forming the interrupt descriptor table. Overrides the profile",
		Required: false,
		Value:    profile.DefaultIDTLength,
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "output file path. Default: stdout",
		Required: false,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "enable debug logging",
		Required: false,
		Value:    false,
	}
)

// loadProfile returns the profile named by the flags, with the IDT length
// flag taking precedence.
func loadProfile(ctx *cli.Context) (*profile.Profile, error) {
	prof := profile.Default()
	if path := ctx.Path(ProfileFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
	}
	if ctx.IsSet(IDTLengthFlag.Name) {
		prof.IDTLength = ctx.Int(IDTLengthFlag.Name)
		if err := prof.Validate(); err != nil {
			return nil, err
		}
	}
	return prof, nil
}

// decodeSource decodes the file named by the first argument, or stdin when
// it is empty or "-".
func decodeSource(ctx *cli.Context, prof *profile.Profile) (*disassembler.Result, error) {
	input := ctx.App.Reader
	if source := ctx.Args().First(); source != "" && source != "-" {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("unable to open source: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		input = file
	}
	return disassembler.Disassemble(input, prof.IDTLength), nil
}

// reportDiagnostics prints every diagnostic to the error stream.
func reportDiagnostics(ctx *cli.Context, res *disassembler.Result) {
	for _, d := range res.Diagnostics {
		_, _ = fmt.Fprintln(ctx.App.ErrWriter, d.String())
	}
}

// writeReport outputs the result in the specified format.
func writeReport(ctx *cli.Context, res *disassembler.Result, format string) error {
	rendererInstance, err := renderer.New(format)
	if err != nil {
		return err
	}

	output := ctx.App.Writer
	if outputPath := ctx.Path(OutputPathFlag.Name); outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}

	return rendererInstance.Render(res, output)
}

// run decodes the source, writes the report and fails on a decode error after
// the partial output has been written.
func run(ctx *cli.Context, format string, prof *profile.Profile) error {
	res, err := decodeSource(ctx, prof)
	if err != nil {
		return err
	}
	reportDiagnostics(ctx, res)

	if err := writeReport(ctx, res, format); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	if err := res.Err(); err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}
	return nil
}
