// Package chunks loads hand-authored terrain chunks that can be stitched into a level.
//
// A chunk file is JSON:
//
//	{"name": "step", "rows": ["..#", ".##", "###"]}
//
// Rows are listed top row first. '#' is solid and '.' is empty.
package chunks

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"platformgen/pkg/engine/world"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// ErrNoChunks is returned when a source contains no chunk files
var ErrNoChunks = errors.New("no chunks found")

// Chunk is a fixed block of terrain
type Chunk struct {
	Name   string
	Width  int
	Height int
	cells  []world.CellState // index = y*Width + x, y = 0 is the bottom row
}

// chunkFile is the on-disk representation of a chunk
type chunkFile struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// At returns the state of the chunk cell at x, y (y = 0 is the bottom row).
// Cells outside the chunk are Empty.
func (c *Chunk) At(x, y int) world.CellState {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return world.Empty
	}
	return c.cells[y*c.Width+x]
}

// Stamp copies the chunk into grid with its bottom-left corner at originX, originY.
// Cells that fall outside the grid are clipped.
func (c *Chunk) Stamp(grid *world.Grid, originX, originY int) {
	for x := 0; x < c.Width; x++ {
		for y := 0; y < c.Height; y++ {
			grid.Set(originX+x, originY+y, c.At(x, y))
		}
	}
}

// Parse builds a chunk from rows listed top row first
func Parse(name string, rows []string) (*Chunk, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("chunk %q: no rows", name)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("chunk %q: empty row", name)
	}

	c := &Chunk{
		Name:   name,
		Width:  width,
		Height: len(rows),
		cells:  make([]world.CellState, width*len(rows)),
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("chunk %q: row %d has width %d, want %d", name, i, len(row), width)
		}
		y := len(rows) - 1 - i
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				c.cells[y*width+x] = world.Solid
			case '.':
			default:
				return nil, fmt.Errorf("chunk %q: unknown glyph %q at row %d col %d", name, row[x], i, x)
			}
		}
	}
	return c, nil
}

// Decode parses a single JSON chunk document
func Decode(data []byte) (*Chunk, error) {
	var f chunkFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse chunk: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("chunk name is required")
	}
	return Parse(f.Name, f.Rows)
}

// Library is an ordered set of chunks. Order is by file name so that
// a given stream always picks the same chunks.
type Library struct {
	chunks []*Chunk
}

// NewLibrary creates a library from the given chunks
func NewLibrary(chunks ...*Chunk) *Library {
	return &Library{chunks: chunks}
}

// Len returns the number of chunks
func (l *Library) Len() int {
	return len(l.chunks)
}

// Get returns the chunk at index i
func (l *Library) Get(i int) *Chunk {
	return l.chunks[i]
}

// Names returns the chunk names in library order
func (l *Library) Names() []string {
	names := make([]string, len(l.chunks))
	for i, c := range l.chunks {
		names[i] = c.Name
	}
	return names
}

// LoadFS loads every *.json file in dir of fsys
func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoChunks)
	}

	lib := &Library{}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read chunk %s: %w", name, err)
		}
		c, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		lib.chunks = append(lib.chunks, c)
	}
	return lib, nil
}

// LoadDir loads every *.json chunk in a directory on disk
func LoadDir(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// Builtin returns the chunk set compiled into the binary
func Builtin() *Library {
	lib, err := LoadFS(builtinFS, "builtin")
	if err != nil {
		panic("invalid builtin chunks: " + err.Error())
	}
	return lib
}
