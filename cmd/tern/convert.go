package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		y, err := readDoc(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, y); err != nil {
			return err
		}
	}
	return nil
}
