// Package grid models a walled rectangular snake map: cell kinds, positions,
// actions and the move validity rule shared by every planner.
package grid

import (
	"fmt"
	"strings"
)

// Cell classifies a single map square.
type Cell byte

const (
	FreePath Cell = iota
	Wall
	Bonus
	SnakeBody
	SnakeHead
	SnakeTail
)

var cellRunes = map[Cell]byte{
	FreePath:  '.',
	Wall:      '#',
	Bonus:     'f',
	SnakeBody: 's',
	SnakeHead: 'h',
	SnakeTail: 't',
}

func (c Cell) String() string {
	switch c {
	case FreePath:
		return "path"
	case Wall:
		return "wall"
	case Bonus:
		return "bonus"
	case SnakeBody:
		return "body"
	case SnakeHead:
		return "head"
	case SnakeTail:
		return "tail"
	}
	return fmt.Sprintf("cell(%d)", byte(c))
}

// Grid is a width×height map, indexed [y][x] with y growing southward.
// Planners only read it; Set exists for whoever assembles the snapshot.
type Grid struct {
	w, h  int
	cells []Cell
}

// New returns a grid whose outer border is Wall and whose interior is FreePath.
func New(w, h int) *Grid {
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.cells[y*w+x] = Wall
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// InBounds reports whether p lies on the map, border included.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

// At returns the kind of cell at p. Anything off the map reads as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.w+p.X]
}

func (g *Grid) Set(p Position, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Y*g.w+p.X] = c
	}
}

// InteriorCells is the number of squares inside the one-cell border.
func (g *Grid) InteriorCells() int {
	if g.w < 2 || g.h < 2 {
		return 0
	}
	return (g.w - 2) * (g.h - 2)
}

// Center is the middle square of the map.
func (g *Grid) Center() Position {
	return Position{X: g.w / 2, Y: g.h / 2}
}

// PlaceSnake marks body on the grid as head, body and tail cells. A snake of
// length one is marked as a head only.
func (g *Grid) PlaceSnake(body Snake) {
	for i, p := range body {
		switch {
		case i == 0:
			g.Set(p, SnakeHead)
		case i == len(body)-1:
			g.Set(p, SnakeTail)
		default:
			g.Set(p, SnakeBody)
		}
	}
}

// Parse decodes an ASCII map, one row per line, top row first. Leading and
// trailing blank lines and whitespace around each row are ignored; whitespace
// inside a row is an error.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	h := len(lines)
	w := len(lines[0])
	if w == 0 {
		return nil, fmt.Errorf("empty map")
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), w)
		}
		for x := 0; x < w; x++ {
			c, ok := cellOf(line[x])
			if !ok {
				return nil, fmt.Errorf("unknown cell %q at (%d,%d)", line[x], x, y)
			}
			g.cells[y*w+x] = c
		}
	}
	return g, nil
}

func cellOf(b byte) (Cell, bool) {
	for c, r := range cellRunes {
		if r == b {
			return c, true
		}
	}
	return 0, false
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			sb.WriteByte(cellRunes[g.cells[y*g.w+x]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
