package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/tern-format/go-tern/encode"
	"github.com/tern-format/go-tern/format"
	"github.com/tern-format/go-tern/parse"
)

type MainConfig struct {
	Minimal bool `cli:"name=m aliases=minimal desc='compact output, no indentation'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Refs    bool `cli:"name=refs desc='resolve &name references while parsing'"`

	T bool `cli:"name=t aliases=tern desc='do i/o in tern'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	f := format.TernFormat
	if cfg.J {
		f = format.JSONFormat
	}
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return f
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.TernFormat
	if cfg.J {
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat()),
		parse.Refs(cfg.Refs),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Minimal(cfg.Minimal),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PackConfig struct {
	*MainConfig

	Z    bool `cli:"name=z aliases=compress desc='run-length compress file contents'"`
	Meta bool `cli:"name=meta desc='record file modes and mod times'"`

	Pack *cli.Command
}

type UnpackConfig struct {
	*MainConfig

	Unpack *cli.Command
}
