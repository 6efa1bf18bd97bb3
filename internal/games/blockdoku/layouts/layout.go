// Package layouts loads starting boards for Blockdoku from YAML files.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/core"
)

// ErrInvalidLayout is wrapped by every validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is a named starting board.
type Layout struct {
	ID          string
	Name        string
	Description string
	Filled      []Coord
	Exploded    []Coord
	Bombs       []Bomb
	FilePath    string
}

// Coord is a (row, col) pair.
type Coord struct {
	Row int
	Col int
}

// Bomb is a pre-placed bomb.
type Bomb struct {
	Row   int
	Col   int
	Timer int
}

// yamlLayout is the file structure; coordinates are [row, col] pairs.
type yamlLayout struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Filled      [][]int    `yaml:"filled,omitempty"`
	Exploded    [][]int    `yaml:"exploded,omitempty"`
	Bombs       []yamlBomb `yaml:"bombs,omitempty"`
}

type yamlBomb struct {
	Row   int `yaml:"row"`
	Col   int `yaml:"col"`
	Timer int `yaml:"timer"`
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("missing id: %w", ErrInvalidLayout)
	}

	l := Layout{ID: yl.ID, Name: yl.Name, Description: yl.Description}
	if l.Name == "" {
		l.Name = l.ID
	}
	var err error
	if l.Filled, err = coords("filled", yl.Filled); err != nil {
		return Layout{}, err
	}
	if l.Exploded, err = coords("exploded", yl.Exploded); err != nil {
		return Layout{}, err
	}
	for _, b := range yl.Bombs {
		l.Bombs = append(l.Bombs, Bomb(b))
	}

	if _, err := l.Board(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func coords(field string, pairs [][]int) ([]Coord, error) {
	out := make([]Coord, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s[%d]: want [row, col], got %v: %w", field, i, p, ErrInvalidLayout)
		}
		out = append(out, Coord{Row: p[0], Col: p[1]})
	}
	return out, nil
}

// Board builds the starting board. Overlapping cells and out-of-range
// coordinates are rejected, as are bombs with a timer below 1.
func (l Layout) Board() (*core.Board, error) {
	b := core.NewBoard()
	used := make(map[int]bool)
	put := func(row, col int, c core.Cell) error {
		if !core.InBounds(row, col) {
			return fmt.Errorf("layout %s: (%d,%d) off board: %w", l.ID, row, col, ErrInvalidLayout)
		}
		idx := core.Index(row, col)
		if used[idx] {
			return fmt.Errorf("layout %s: (%d,%d) listed twice: %w", l.ID, row, col, ErrInvalidLayout)
		}
		used[idx] = true
		if err := b.Set(row, col, c); err != nil {
			return fmt.Errorf("layout %s: %w: %w", l.ID, ErrInvalidLayout, err)
		}
		return nil
	}

	for _, c := range l.Filled {
		if err := put(c.Row, c.Col, core.FilledCell()); err != nil {
			return nil, err
		}
	}
	for _, c := range l.Exploded {
		if err := put(c.Row, c.Col, core.ExplodedCell()); err != nil {
			return nil, err
		}
	}
	for _, bomb := range l.Bombs {
		if err := put(bomb.Row, bomb.Col, core.BombCell(bomb.Timer)); err != nil {
			return nil, err
		}
	}
	return b, nil
}
