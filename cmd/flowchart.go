package cmd

import (
	"github.com/ChainSafe/hexdis/renderer"
	"github.com/urfave/cli/v2"
)

func CreateFlowchartCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "flowchart",
		Usage:       "Writes the control flow graph in flowchart.js syntax",
		Description: "Writes the control flow graph of the code region. Programs calling subroutines have no graph",
		ArgsUsage:   "[file]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			IDTLengthFlag,
			OutputPathFlag,
		},
	}
}

var FlowchartCommand = CreateFlowchartCommand(Flowchart)

func Flowchart(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	return run(ctx, renderer.FormatFlowchart, prof)
}
