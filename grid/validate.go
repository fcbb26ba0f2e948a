package grid

// IsValidMove reports whether stepping from p in direction a lands on a
// square that is not a wall, the snake's body, or its tail.
func (g *Grid) IsValidMove(p Position, a Action) bool {
	return passable(g.At(p.Move(a)))
}

// HasValidMove reports whether any of the four moves from p is valid.
func (g *Grid) HasValidMove(p Position) bool {
	for _, a := range Actions {
		if g.IsValidMove(p, a) {
			return true
		}
	}
	return false
}

// ValidMoves lists the valid actions from p in tie-break order.
func (g *Grid) ValidMoves(p Position) []Action {
	var moves []Action
	for _, a := range Actions {
		if g.IsValidMove(p, a) {
			moves = append(moves, a)
		}
	}
	return moves
}

// FreeNeighbors counts the squares around p that a head could step onto.
func (g *Grid) FreeNeighbors(p Position) int {
	n := 0
	for _, q := range p.Neighbors() {
		if passable(g.At(q)) {
			n++
		}
	}
	return n
}

func passable(c Cell) bool {
	return c != Wall && c != SnakeBody && c != SnakeTail
}

// FindBonus scans the interior row by row and returns the first bonus.
func FindBonus(g *Grid) (Position, bool) {
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.cells[y*g.w+x] == Bonus {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}
