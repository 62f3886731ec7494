package pak

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bgrewell/peggle-kit/pkg/encoding"
)

func TestSavePakThenLoadPakRoundTrip(t *testing.T) {
	a := newArchive(nil)
	ts, err := encoding.FromTime(encoding.DecodeFileTime(132000000000000000))
	require.NoError(t, err)
	require.NoError(t, a.Add("testfile.bin", []byte("hello\x00"), ts))
	a.SetXor(0xF7)

	dir := t.TempDir()
	path := filepath.Join(dir, "archive.pak")
	require.NoError(t, a.SavePak(path))

	loaded, err := Open(path)
	require.NoError(t, err)

	require.Equal(t, []string{"testfile.bin"}, loaded.List())
	e, err := loaded.Get("testfile.bin")
	require.NoError(t, err)
	require.Equal(t, []byte("hello\x00"), e.Payload)
	require.Equal(t, ts, e.ModTime)
}

func TestSavePakScenarioS1(t *testing.T) {
	a := newArchive(nil)
	ts, err := encoding.FromTime(encoding.DecodeFileTime(132000000000000000))
	require.NoError(t, err)
	require.NoError(t, a.Add("testfile.bin", []byte("hello\x00"), ts))
	a.SetXor(0xF7)

	dir := t.TempDir()
	path := filepath.Join(dir, "archive.pak")
	require.NoError(t, a.SavePak(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 8)

	reversed := make([]byte, 8)
	for i := 0; i < 8; i++ {
		reversed[i] = raw[i] ^ 0xF7
	}
	require.Equal(t, []byte{0xC0, 0x4A, 0xC0, 0xBA, 0x00, 0x00, 0x00, 0x00}, reversed)
}

func TestAddConflict(t *testing.T) {
	a := newArchive(nil)
	require.NoError(t, a.Add("a.txt", []byte("1")))
	require.ErrorIs(t, a.Add("a.txt", []byte("2")), ErrConflict)
}

func TestUpdateMissing(t *testing.T) {
	a := newArchive(nil)
	require.ErrorIs(t, a.Update("missing.txt", []byte("x")), ErrNotExist)
}

func TestRemoveMissing(t *testing.T) {
	a := newArchive(nil)
	require.ErrorIs(t, a.Remove("missing.txt"), ErrNotFound)
}

func TestOpenNotAPak(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-pak.bin")
	require.NoError(t, os.WriteFile(path, []byte{0, 1, 2, 3, 4, 5, 6, 7}, 0o644))
	_, err := Open(path)
	require.ErrorIs(t, err, ErrNotAPak)
}

func TestLoadDirSaveDirRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "levels"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "levels", "level01.dat"), []byte{1, 2, 3}, 0o644))

	a, err := Open(src)
	require.NoError(t, err)
	require.Contains(t, a.List(), "levels\\level01.dat")

	dst := t.TempDir()
	require.NoError(t, a.SaveDir(dst))

	data, err := os.ReadFile(filepath.Join(dst, "levels", "level01.dat"))
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)
}

func TestInsertionOrderPreserved(t *testing.T) {
	a := newArchive(nil)
	require.NoError(t, a.Add("c.txt", []byte("c")))
	require.NoError(t, a.Add("a.txt", []byte("a")))
	require.NoError(t, a.Add("b.txt", []byte("b")))
	require.Equal(t, []string{"c.txt", "a.txt", "b.txt"}, a.List())
}
