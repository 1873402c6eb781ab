package tzdir

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offsetlab/tzq/tzif"
)

// estFile builds a minimal version 2 TZif file: no transitions, a single
// fixed -05:00 local time type and the designation "EST".
func estFile() []byte {
	var buf bytes.Buffer
	header := func() {
		buf.WriteString("TZif2")
		buf.Write(make([]byte, 15))
		for _, c := range []uint32{0, 0, 0, 0, 1, 4} {
			binary.Write(&buf, binary.BigEndian, c)
		}
	}
	header()
	buf.Write(make([]byte, 1*6+4)) // version 1 data block
	header()
	binary.Write(&buf, binary.BigEndian, int32(-18000))
	buf.Write([]byte{0, 0}) // not DST, designation offset 0
	buf.WriteString("EST\x00")
	return buf.Bytes()
}

func writeZone(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, estFile(), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeZone(t, dir, "America/New_York")

	z, err := Config{Dir: dir}.Load("America/New_York")
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", z.Name)
	assert.Empty(t, z.Transitions)
	assert.Equal(t, []tzif.LocalTimeType{{UTCOffset: -18000}}, z.Types)
	assert.Equal(t, []string{"EST"}, z.Abbreviations)
}

func TestLoad_MissingZone(t *testing.T) {
	_, err := Config{Dir: t.TempDir()}.Load("Europe/Paris")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidName(t *testing.T) {
	cfg := Config{Dir: t.TempDir()}
	for _, name := range []string{"", "/etc/passwd", "../secret", "a/../../b", `a\b`} {
		_, err := cfg.Load(name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestLoad_NotTZif(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bogus"), []byte("not a tzif file"), 0o644))

	_, err := Config{Dir: dir}.Load("bogus")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TZDIR", "/tmp/zoneinfo")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/zoneinfo", cfg.Dir)
}

func TestFromEnv_Default(t *testing.T) {
	t.Setenv("TZDIR", "") // registers the restore
	require.NoError(t, os.Unsetenv("TZDIR"))
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/zoneinfo", cfg.Dir)
}
