package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/chroma/common"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultTable is the embedded level table shipped with the game.
const DefaultTable = "stages.json"

var (
	ErrInvalidStage = errors.New("levels: invalid stage index")
	ErrEmptyTable   = errors.New("levels: level table has no stages")
	ErrInvalidRect  = errors.New("levels: rect must have positive size")
)

// Stage is one level's static configuration. All coordinates are tile units.
type Stage struct {
	Name   string     `json:"name,omitempty"`
	Spawn  Point      `json:"spawn"`
	Map    []RectSpec `json:"map"`
	Items  []ItemSpec `json:"items"`
	Boxes  []BoxSpec  `json:"boxes"`
	Portal PortalSpec `json:"portal"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RectSpec struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Pixels scales the rect to pixel space.
func (r RectSpec) Pixels() common.Rect {
	return common.TileRect(r.X, r.Y, r.W, r.H)
}

type ItemSpec struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color common.RGB `json:"color"`
}

// BoxSpec places a box. W and H are optional; zero means the box prefab default.
type BoxSpec struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	W     int        `json:"w,omitempty"`
	H     int        `json:"h,omitempty"`
	Color common.RGB `json:"color"`
}

type PortalSpec struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color common.RGB `json:"color"`
}

// MapPixels returns the stage terrain in pixel space.
func (s Stage) MapPixels() []common.Rect {
	out := make([]common.Rect, 0, len(s.Map))
	for _, r := range s.Map {
		out = append(out, r.Pixels())
	}
	return out
}

// Table is the ordered, immutable list of stages.
type Table struct {
	stages []Stage
}

func NewTable(stages ...Stage) (*Table, error) {
	t := &Table{stages: append([]Stage(nil), stages...)}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of stages.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.stages)
}

// Stage looks up a stage by index.
func (t *Table) Stage(i int) (Stage, error) {
	if t == nil || i < 0 || i >= len(t.stages) {
		return Stage{}, fmt.Errorf("%w: %d (table has %d)", ErrInvalidStage, i, t.Len())
	}
	return t.stages[i], nil
}

// Validate checks the table for data that would break stage loading.
func (t *Table) Validate() error {
	if t.Len() == 0 {
		return ErrEmptyTable
	}
	for i, s := range t.stages {
		for j, r := range s.Map {
			if r.W <= 0 || r.H <= 0 {
				return fmt.Errorf("stage %d map rect %d (%dx%d): %w", i, j, r.W, r.H, ErrInvalidRect)
			}
		}
		for j, b := range s.Boxes {
			if b.W < 0 || b.H < 0 {
				return fmt.Errorf("stage %d box %d (%dx%d): %w", i, j, b.W, b.H, ErrInvalidRect)
			}
		}
	}
	return nil
}

// Load reads the embedded default table.
func Load() (*Table, error) {
	return LoadFromFS(LevelsFS, DefaultTable)
}

// LoadFromFS reads a level table from an fs.FS.
func LoadFromFS(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level table: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a level table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level table: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	var stages []Stage
	if err := json.Unmarshal(data, &stages); err != nil {
		return nil, fmt.Errorf("unmarshal level table: %w", err)
	}
	return NewTable(stages...)
}
