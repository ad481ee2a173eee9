package chunks

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformgen/pkg/engine/world"
)

func TestParse_BottomRowIsYZero(t *testing.T) {
	c, err := Parse("step", []string{
		"..#",
		"###",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Width)
	assert.Equal(t, 2, c.Height)
	assert.Equal(t, world.Solid, c.At(0, 0))
	assert.Equal(t, world.Empty, c.At(0, 1))
	assert.Equal(t, world.Solid, c.At(2, 1))
	assert.Equal(t, world.Empty, c.At(3, 0))
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string][]string{
		"no rows":       nil,
		"empty row":     {""},
		"ragged":        {"##", "#"},
		"unknown glyph": {"#x"},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name, rows)
			assert.Error(t, err)
		})
	}
}

func TestDecode_RequiresName(t *testing.T) {
	_, err := Decode([]byte(`{"rows": ["#"]}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestStamp_Clips(t *testing.T) {
	c, err := Parse("block", []string{"##", "##"})
	require.NoError(t, err)

	g := world.NewGrid(3, 1)
	c.Stamp(g, 2, 0)
	assert.Equal(t, 1, g.CountSolid())
	assert.True(t, g.IsSolid(2, 0))
}

func TestLoadFS_SortedByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"set/b.json":   {Data: []byte(`{"name": "second", "rows": ["#"]}`)},
		"set/a.json":   {Data: []byte(`{"name": "first", "rows": ["."]}`)},
		"set/notes.md": {Data: []byte(`ignored`)},
	}
	lib, err := LoadFS(fsys, "set")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lib.Names())
}

func TestLoadFS_Empty(t *testing.T) {
	fsys := fstest.MapFS{"set/readme.txt": {Data: []byte("x")}}
	_, err := LoadFS(fsys, "set")
	assert.True(t, errors.Is(err, ErrNoChunks))
}

func TestLoadFS_BadChunkNamesFile(t *testing.T) {
	fsys := fstest.MapFS{"set/bad.json": {Data: []byte(`{"name": "bad", "rows": ["#", "##"]}`)}}
	_, err := LoadFS(fsys, "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestBuiltin(t *testing.T) {
	lib := Builtin()
	require.Equal(t, 5, lib.Len())
	assert.Equal(t, "flat", lib.Get(0).Name)
	for i := 0; i < lib.Len(); i++ {
		assert.Greater(t, lib.Get(i).Width, 0)
	}
}
