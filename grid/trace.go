package grid

import "fmt"

// TraceSnake recovers the body of the single snake drawn on g by walking
// from its head through adjacent body cells to the tail. Body cells are taken
// before the tail, and where the walk could branch the first neighbour in
// North, East, South, West order wins.
func TraceSnake(g *Grid) (Snake, error) {
	var body Snake
	for y := 0; y < g.h && body == nil; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] == SnakeHead {
				body = Snake{{X: x, Y: y}}
				break
			}
		}
	}
	if body == nil {
		return nil, fmt.Errorf("no snake head on map")
	}
	seen := map[Position]bool{body[0]: true}
	for {
		cur := body[len(body)-1]
		next, ok := step(g, cur, seen, SnakeBody)
		if !ok {
			next, ok = step(g, cur, seen, SnakeTail)
		}
		if !ok {
			break
		}
		seen[next] = true
		body = append(body, next)
		if g.At(next) == SnakeTail {
			return body, nil
		}
	}
	if len(body) > 1 {
		return nil, fmt.Errorf("snake body ends at %v without a tail", body[len(body)-1])
	}
	return body, nil
}

func step(g *Grid, cur Position, seen map[Position]bool, want Cell) (Position, bool) {
	for _, q := range cur.Neighbors() {
		if !seen[q] && g.At(q) == want {
			return q, true
		}
	}
	return Position{}, false
}
