package cmd

import (
	"github.com/urfave/cli/v2"
)

var FormatFlag = &cli.StringFlag{
	Name:        "format",
	Usage:       "format of the decode records. Options: table, json",
	Required:    false,
	DefaultText: "table",
}

func CreateDecodeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "Lists the decoded instructions",
		Description: "Lists address, word, instruction and description of every decoded word",
		ArgsUsage:   "[file]",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			IDTLengthFlag,
			FormatFlag,
			OutputPathFlag,
		},
	}
}

var DecodeCommand = CreateDecodeCommand(Decode)

func Decode(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(FormatFlag.Name) {
		prof.Format = ctx.String(FormatFlag.Name)
		if err := prof.Validate(); err != nil {
			return err
		}
	}
	return run(ctx, prof.Format, prof)
}
