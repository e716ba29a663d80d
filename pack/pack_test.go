package pack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tern-format/go-tern/wire"
)

func writeTree(t *testing.T, dir string) string {
	t.Helper()
	root := filepath.Join(dir, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("world"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deep", "c.bin"),
		bytes.Repeat([]byte{0xAB}, 2048), 0o644))
	return root
}

func TestPackUnpack(t *testing.T) {
	root := writeTree(t, t.TempDir())
	blob, err := Pack(root)
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, Unpack(blob, dest))

	got, err := os.ReadFile(filepath.Join(dest, "proj", "a.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
	got, err = os.ReadFile(filepath.Join(dest, "proj", "sub", "b.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("world"), got)
	got, err = os.ReadFile(filepath.Join(dest, "proj", "sub", "deep", "c.bin"))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xAB}, 2048), got)
}

func TestPackCompression(t *testing.T) {
	root := writeTree(t, t.TempDir())
	plain, err := Pack(root)
	require.NoError(t, err)
	packed, err := Pack(root, WithCompression())
	require.NoError(t, err)
	// c.bin is one long run
	require.Less(t, len(packed), len(plain))

	dest := t.TempDir()
	require.NoError(t, Unpack(packed, dest))
	got, err := os.ReadFile(filepath.Join(dest, "proj", "sub", "deep", "c.bin"))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0xAB}, 2048), got)
}

func TestPackMetadata(t *testing.T) {
	root := writeTree(t, t.TempDir())
	secret := filepath.Join(root, "a.txt")
	require.NoError(t, os.Chmod(secret, 0o600))
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(secret, stamp, stamp))

	blob, err := Pack(root, WithMetadata())
	require.NoError(t, err)
	dest := t.TempDir()
	require.NoError(t, Unpack(blob, dest))

	info, err := os.Stat(filepath.Join(dest, "proj", "a.txt"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	require.True(t, info.ModTime().Equal(stamp))
}

func TestPackNoMetadataByDefault(t *testing.T) {
	root := writeTree(t, t.TempDir())
	require.NoError(t, os.Chmod(filepath.Join(root, "a.txt"), 0o600))
	blob, err := Pack(root)
	require.NoError(t, err)
	dest := t.TempDir()
	require.NoError(t, Unpack(blob, dest))
	info, err := os.Stat(filepath.Join(dest, "proj", "a.txt"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestPackMissingRoot(t *testing.T) {
	_, err := Pack(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestUserDefinedEntries(t *testing.T) {
	a := &Archive{
		Root: NewDir("virtual",
			NewFile("greeting", []byte("hi")),
			NewDir("empty"),
		),
	}
	s := wire.New()
	require.NoError(t, a.MarshalWire(s))

	out := &Archive{}
	require.NoError(t, out.UnmarshalWire(wire.NewDeserializer(s.Bytes())))
	require.Equal(t, "virtual", out.Root.Name)
	require.True(t, out.Root.UserDefined)
	require.Len(t, out.Root.Children, 2)
	require.Equal(t, []byte("hi"), out.Root.Children[0].Data)
	require.True(t, out.Root.Children[1].Dir)
}

func TestUnpackRejectsTraversalNames(t *testing.T) {
	for _, name := range []string{"../escaped.txt", "/abs.txt", "a/b.txt", `a\b.txt`, "..", ".", ""} {
		a := &Archive{Root: NewDir("root", NewFile(name, []byte("x")))}
		s := wire.New()
		require.NoError(t, a.MarshalWire(s))

		dest := t.TempDir()
		err := Unpack(s.Bytes(), dest)
		require.ErrorIs(t, err, wire.ErrBadValue, "name %q", name)

		// nothing may materialize above the restore root
		_, statErr := os.Stat(filepath.Join(dest, "escaped.txt"))
		require.True(t, os.IsNotExist(statErr), "name %q", name)
	}
}
