package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/scott-cotton/cli"

	"github.com/tern-format/go-tern/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := readDoc(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}

	// diff canonical renderings so formatting noise never shows up
	aTxt := encode.MustString(a)
	bTxt := encode.MustString(b)
	if aTxt == bTxt {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(aTxt, bTxt, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	out := dmp.PatchToText(dmp.PatchMake(aTxt, diffs))
	if cfg.Color || colorOut(cc) {
		out = dmp.DiffPrettyText(diffs)
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func colorOut(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
