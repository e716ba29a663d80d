package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tern-format/go-tern/pack"
)

func packDir(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: pack requires <dir> and <out>", cli.ErrUsage)
	}
	var opts []pack.PackOption
	if cfg.Z {
		opts = append(opts, pack.WithCompression())
	}
	if cfg.Meta {
		opts = append(opts, pack.WithMetadata())
	}
	blob, err := pack.Pack(args[0], opts...)
	if err != nil {
		return fmt.Errorf("error packing %s: %w", args[0], err)
	}
	return os.WriteFile(args[1], blob, 0644)
}

func unpackBlob(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: unpack requires <in> and <dir>", cli.ErrUsage)
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if err := pack.Unpack(blob, args[1]); err != nil {
		return fmt.Errorf("error unpacking %s: %w", args[0], err)
	}
	return nil
}
