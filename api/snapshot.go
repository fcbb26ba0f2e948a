package api

import (
	"github.com/cmars/gridsnek/grid"
)

// Snapshot converts a board into a grid with a one-cell wall border, as seen
// by st.Me. Battlesnake's y axis points up and the grid's points down, so
// grid.North is "up". Other snakes become body cells; the food nearest the
// head becomes the bonus. Hazards are ignored.
func Snapshot(st *State) (*grid.Grid, grid.Snake) {
	b := st.Board
	g := grid.New(b.Width+2, b.Height+2)
	at := func(p Point) grid.Position {
		return grid.Position{X: p.X + 1, Y: b.Height - p.Y}
	}

	var body grid.Snake
	for _, p := range st.Me.Body {
		q := at(p)
		// Segments stack up at the start of a game and after eating.
		if len(body) > 0 && body[len(body)-1] == q {
			continue
		}
		body = append(body, q)
	}
	if len(body) == 0 {
		body = grid.Snake{at(st.Me.Head)}
	}

	if len(b.Food) > 0 {
		best := at(b.Food[0])
		for _, f := range b.Food[1:] {
			if p := at(f); grid.Manhattan(body.Head(), p) < grid.Manhattan(body.Head(), best) {
				best = p
			}
		}
		g.Set(best, grid.Bonus)
	}
	for _, s := range b.Snakes {
		if s.ID == st.Me.ID {
			continue
		}
		for _, p := range s.Body {
			g.Set(at(p), grid.SnakeBody)
		}
	}
	g.PlaceSnake(body)
	return g, body
}

// MoveName is the wire name of an action.
func MoveName(a grid.Action) string {
	switch a {
	case grid.North:
		return "up"
	case grid.South:
		return "down"
	case grid.East:
		return "right"
	case grid.West:
		return "left"
	}
	return "up"
}
