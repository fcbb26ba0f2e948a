package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Action is a cardinal move of the snake's head.
type Action int

const (
	North Action = iota
	East
	South
	West
)

// Actions lists every action in tie-break order.
var Actions = [4]Action{North, East, South, West}

func (a Action) String() string {
	switch a {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Opposite returns the reverse direction.
func (a Action) Opposite() Action {
	return (a + 2) % 4
}

// Move returns the position one step from p in direction a.
func (p Position) Move(a Action) Position {
	switch a {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	}
	return p
}

// Neighbors returns the four orthogonal neighbours of p in North, East,
// South, West order.
func (p Position) Neighbors() [4]Position {
	return [4]Position{p.Move(North), p.Move(East), p.Move(South), p.Move(West)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan is the taxicab distance between a and b.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// DirectionTo returns the action leading from one cell to an adjacent one.
func DirectionTo(from, to Position) (Action, bool) {
	for _, a := range Actions {
		if from.Move(a) == to {
			return a, true
		}
	}
	return North, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Snake is a body ordered head first.
type Snake []Position

func (s Snake) Head() Position { return s[0] }
func (s Snake) Tail() Position { return s[len(s)-1] }

// Occupied returns the set of cells covered by the snake.
func (s Snake) Occupied() map[Position]bool {
	m := make(map[Position]bool, len(s))
	for _, p := range s {
		m[p] = true
	}
	return m
}

// ParseSnake decodes a body written as "x,y;x,y;...", head first.
func ParseSnake(s string) (Snake, error) {
	var body Snake
	for _, part := range strings.Split(strings.TrimSpace(s), ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("bad position %q", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("bad y in %q: %w", part, err)
		}
		body = append(body, Position{X: x, Y: y})
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty snake")
	}
	return body, nil
}
