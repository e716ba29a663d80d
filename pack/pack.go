// Package pack bundles a directory tree into a single wire blob and
// restores it. The blob is a header flag (filesystem metadata
// preserved?) followed by a recursive entry tree over the wire
// codec; file contents may be run-length compressed per file.
package pack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tern-format/go-tern/debug"
	"github.com/tern-format/go-tern/wire"
)

// Entry kinds, one discriminant byte on the wire.
const (
	dirKind  byte = 0
	fileKind byte = 1
)

// Entry is one node of the packed tree. Real entries come from the
// filesystem walk; user-defined entries are injected by callers
// building virtual trees and are flagged as such on the wire.
type Entry struct {
	Name        string
	Dir         bool
	UserDefined bool
	Mode        fs.FileMode
	ModTime     time.Time
	Data        []byte
	Children    []*Entry
}

// NewDir returns a user-defined directory entry.
func NewDir(name string, children ...*Entry) *Entry {
	return &Entry{Name: name, Dir: true, UserDefined: true, Children: children}
}

// NewFile returns a user-defined file entry.
func NewFile(name string, data []byte) *Entry {
	return &Entry{Name: name, UserDefined: true, Data: data}
}

// Archive is an entry tree plus the packing flags recorded in the
// blob header. It implements the wire record contract, so archives
// compose into larger wire messages.
type Archive struct {
	Meta     bool
	Compress bool
	Root     *Entry
}

func (a *Archive) MarshalWire(s *wire.Serializer) error {
	s.Bool(a.Meta)
	return a.writeEntry(s, a.Root)
}

func (a *Archive) writeEntry(s *wire.Serializer, e *Entry) error {
	if e.Dir {
		s.Uint8(dirKind)
	} else {
		s.Uint8(fileKind)
	}
	if err := s.String(e.Name); err != nil {
		return err
	}
	s.Bool(e.UserDefined)
	if a.Meta {
		s.Uint32(uint32(e.Mode))
		s.Int64(e.ModTime.Unix())
	}
	if e.Dir {
		return s.Array(len(e.Children), func(s *wire.Serializer, i int) error {
			return a.writeEntry(s, e.Children[i])
		})
	}
	data := e.Data
	compressed := false
	if a.Compress {
		if c := rleCompress(data); len(c) < len(data) {
			data, compressed = c, true
		}
	}
	s.Bool(compressed)
	return s.BytesN(data)
}

func (a *Archive) UnmarshalWire(d *wire.Deserializer) error {
	var err error
	if a.Meta, err = d.Bool(); err != nil {
		return err
	}
	a.Root, err = a.readEntry(d)
	return err
}

func (a *Archive) readEntry(d *wire.Deserializer) (*Entry, error) {
	kind, err := d.Uint8()
	if err != nil {
		return nil, err
	}
	if kind != dirKind && kind != fileKind {
		return nil, fmt.Errorf("%w: entry kind %d", wire.ErrBadValue, kind)
	}
	e := &Entry{Dir: kind == dirKind}
	if e.Name, err = d.MustStringVal(); err != nil {
		return nil, err
	}
	if !validName(e.Name) {
		return nil, fmt.Errorf("%w: entry name %q", wire.ErrBadValue, e.Name)
	}
	if e.UserDefined, err = d.Bool(); err != nil {
		return nil, err
	}
	if a.Meta {
		mode, err := d.Uint32()
		if err != nil {
			return nil, err
		}
		e.Mode = fs.FileMode(mode)
		sec, err := d.Int64()
		if err != nil {
			return nil, err
		}
		e.ModTime = time.Unix(sec, 0)
	}
	if e.Dir {
		_, err := d.Array(func(d *wire.Deserializer, i int) error {
			c, err := a.readEntry(d)
			if err != nil {
				return err
			}
			e.Children = append(e.Children, c)
			return nil
		})
		return e, err
	}
	compressed, err := d.Bool()
	if err != nil {
		return nil, err
	}
	if e.Data, err = d.BytesN(); err != nil {
		return nil, err
	}
	if compressed {
		e.Data = rleDecompress(e.Data)
	}
	return e, nil
}

// validName holds an entry to a single path component, so a crafted
// blob cannot place files outside the directory being restored into.
func validName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

type packOpts struct {
	meta     bool
	compress bool
}

// PackOption configures Pack.
type PackOption func(*packOpts)

// WithMetadata records file mode and modification time per entry and
// restores them on unpack.
func WithMetadata() PackOption {
	return func(o *packOpts) { o.meta = true }
}

// WithCompression run-length compresses each file whose compressed
// form is smaller than the original.
func WithCompression() PackOption {
	return func(o *packOpts) { o.compress = true }
}

// Pack walks the directory at root and returns the packed blob.
// Regular files and directories only; other entry types are skipped.
func Pack(root string, opts ...PackOption) ([]byte, error) {
	var o packOpts
	for _, opt := range opts {
		opt(&o)
	}
	e, err := walk(root)
	if err != nil {
		return nil, err
	}
	a := &Archive{Meta: o.meta, Compress: o.compress, Root: e}
	s := wire.New()
	if err := s.Marshal(a); err != nil {
		return nil, err
	}
	if debug.Pack() {
		debug.Logf("packed %s: %d bytes (meta=%v compress=%v)\n",
			root, s.Len(), a.Meta, a.Compress)
	}
	return s.Reset(), nil
}

func walk(path string) (*Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	e := &Entry{
		Name:    filepath.Base(path),
		Mode:    info.Mode().Perm(),
		ModTime: info.ModTime(),
	}
	if !info.IsDir() {
		e.Data, err = os.ReadFile(path)
		return e, err
	}
	e.Dir = true
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, de := range entries {
		if !de.IsDir() && !de.Type().IsRegular() {
			continue
		}
		c, err := walk(filepath.Join(path, de.Name()))
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, c)
	}
	return e, nil
}

// Unpack restores a packed blob under dest. The archive root entry
// is created inside dest under its recorded name.
func Unpack(data []byte, dest string) error {
	a := &Archive{}
	d := wire.NewDeserializer(data)
	if err := d.Unmarshal(a); err != nil {
		return err
	}
	return a.restore(a.Root, dest)
}

func (a *Archive) restore(e *Entry, dir string) error {
	path := filepath.Join(dir, e.Name)
	if e.Dir {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return err
		}
		for _, c := range e.Children {
			if err := a.restore(c, path); err != nil {
				return err
			}
		}
	} else {
		if err := os.WriteFile(path, e.Data, 0o644); err != nil {
			return err
		}
	}
	if a.Meta {
		if err := os.Chmod(path, e.Mode); err != nil {
			return err
		}
		if err := os.Chtimes(path, e.ModTime, e.ModTime); err != nil {
			return err
		}
	}
	return nil
}
