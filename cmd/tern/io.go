package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tern-format/go-tern/encode"
	"github.com/tern-format/go-tern/format"
	"github.com/tern-format/go-tern/ir"
	"github.com/tern-format/go-tern/parse"
	"github.com/tern-format/go-tern/wire"
)

// readDoc reads and decodes one document from a file path, "-"
// meaning stdin, honoring the configured input format.
func readDoc(cfg *MainConfig, stdin io.Reader, file string) (*ir.Node, error) {
	var (
		r   io.Reader
		err error
	)
	if file == "-" {
		r = stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return decode(cfg, d)
}

func decode(cfg *MainConfig, d []byte) (*ir.Node, error) {
	if cfg.inFormat() == format.WireFormat {
		return wire.NewDeserializer(d).Value()
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

// writeDoc renders y to w in the configured output format.
func writeDoc(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	if cfg.outFormat() == format.WireFormat {
		s := wire.New()
		if err := s.Value(y); err != nil {
			return err
		}
		_, err := w.Write(s.Bytes())
		return err
	}
	return encode.Encode(y, w, cfg.encOpts(w)...)
}
