package grid

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPositionCardinal(t *testing.T) {
	c := qt.New(t)
	p := Position{X: 3, Y: 3}
	c.Assert(p.Move(North), qt.Equals, Position{X: 3, Y: 2})
	c.Assert(p.Move(South), qt.Equals, Position{X: 3, Y: 4})
	c.Assert(p.Move(West), qt.Equals, Position{X: 2, Y: 3})
	c.Assert(p.Move(East), qt.Equals, Position{X: 4, Y: 3})
	c.Assert(North.Opposite(), qt.Equals, South)
	c.Assert(West.Opposite(), qt.Equals, East)
}

func TestDirectionTo(t *testing.T) {
	c := qt.New(t)
	a, ok := DirectionTo(Position{X: 1, Y: 1}, Position{X: 2, Y: 1})
	c.Assert(ok, qt.IsTrue)
	c.Assert(a, qt.Equals, East)
	_, ok = DirectionTo(Position{X: 1, Y: 1}, Position{X: 2, Y: 2})
	c.Assert(ok, qt.IsFalse)
}

func TestParse(t *testing.T) {
	c := qt.New(t)
	g, err := Parse(`
#####
#hs.#
#.tf#
#####`)
	c.Assert(err, qt.IsNil)
	c.Assert(g.Width(), qt.Equals, 5)
	c.Assert(g.Height(), qt.Equals, 4)
	c.Assert(g.At(Position{X: 0, Y: 0}), qt.Equals, Wall)
	c.Assert(g.At(Position{X: 1, Y: 1}), qt.Equals, SnakeHead)
	c.Assert(g.At(Position{X: 2, Y: 1}), qt.Equals, SnakeBody)
	c.Assert(g.At(Position{X: 2, Y: 2}), qt.Equals, SnakeTail)
	c.Assert(g.At(Position{X: 3, Y: 2}), qt.Equals, Bonus)
	c.Assert(g.At(Position{X: -1, Y: 2}), qt.Equals, Wall)
	c.Assert(g.InteriorCells(), qt.Equals, 6)
	c.Assert(g.String(), qt.Equals, "#####\n#hs.#\n#.tf#\n#####\n")
}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)
	_, err := Parse("###\n##\n")
	c.Assert(err, qt.ErrorMatches, `row 1 has width 2, want 3`)
	_, err = Parse("#?#")
	c.Assert(err, qt.ErrorMatches, `unknown cell .*`)
	_, err = Parse("#####\n#. .#\n#####")
	c.Assert(err, qt.ErrorMatches, `unknown cell ' ' at \(2,1\)`)
}

func TestParseIndented(t *testing.T) {
	c := qt.New(t)
	g, err := Parse("\n\t####\n  #h.#\r\n####  \n")
	c.Assert(err, qt.IsNil)
	c.Assert(g.String(), qt.Equals, "####\n#h.#\n####\n")
}

func TestNewHasWallBorder(t *testing.T) {
	c := qt.New(t)
	g := New(4, 3)
	c.Assert(g.String(), qt.Equals, "####\n#..#\n####\n")
}

func TestIsValidMove(t *testing.T) {
	c := qt.New(t)
	g, err := Parse(`
######
#.f..#
#shs.#
#.t..#
######`)
	c.Assert(err, qt.IsNil)
	head := Position{X: 2, Y: 2}
	c.Assert(g.IsValidMove(head, North), qt.IsTrue)
	c.Assert(g.IsValidMove(head, East), qt.IsFalse)
	c.Assert(g.IsValidMove(head, South), qt.IsFalse)
	c.Assert(g.IsValidMove(head, West), qt.IsFalse)
	c.Assert(g.ValidMoves(head), qt.DeepEquals, []Action{North})
	c.Assert(g.HasValidMove(head), qt.IsTrue)
	c.Assert(g.IsValidMove(Position{X: 1, Y: 1}, North), qt.IsFalse)
	c.Assert(g.FreeNeighbors(Position{X: 4, Y: 2}), qt.Equals, 2)
}

func TestHasValidMoveTrapped(t *testing.T) {
	c := qt.New(t)
	g, err := Parse(`
#####
#sss#
#sht#
#####`)
	c.Assert(err, qt.IsNil)
	c.Assert(g.HasValidMove(Position{X: 2, Y: 2}), qt.IsFalse)
}

func TestFindBonus(t *testing.T) {
	c := qt.New(t)
	g, err := Parse(`
#####
#..f#
#f..#
#####`)
	c.Assert(err, qt.IsNil)
	p, ok := FindBonus(g)
	c.Assert(ok, qt.IsTrue)
	c.Assert(p, qt.Equals, Position{X: 3, Y: 1})

	_, ok = FindBonus(New(5, 5))
	c.Assert(ok, qt.IsFalse)
}

func TestPlaceSnake(t *testing.T) {
	c := qt.New(t)
	g := New(5, 4)
	g.PlaceSnake(Snake{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}})
	c.Assert(g.String(), qt.Equals, "#####\n#hss#\n#..t#\n#####\n")
}

func TestParseSnake(t *testing.T) {
	c := qt.New(t)
	s, err := ParseSnake("1,1; 2,1;2,2")
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.DeepEquals, Snake{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}})
	c.Assert(s.Head(), qt.Equals, Position{X: 1, Y: 1})
	c.Assert(s.Tail(), qt.Equals, Position{X: 2, Y: 2})
	c.Assert(s.Occupied()[Position{X: 2, Y: 1}], qt.IsTrue)

	_, err = ParseSnake("1;2")
	c.Assert(err, qt.ErrorMatches, `bad position "1"`)
	_, err = ParseSnake("")
	c.Assert(err, qt.ErrorMatches, `empty snake`)
}

func TestTraceSnake(t *testing.T) {
	c := qt.New(t)
	g, err := Parse(`
######
#ht..#
#ss..#
#....#
######`)
	c.Assert(err, qt.IsNil)
	body, err := TraceSnake(g)
	c.Assert(err, qt.IsNil)
	c.Assert(body, qt.DeepEquals, Snake{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}})

	g, err = Parse(`
####
#h.#
####`)
	c.Assert(err, qt.IsNil)
	body, err = TraceSnake(g)
	c.Assert(err, qt.IsNil)
	c.Assert(body, qt.DeepEquals, Snake{{X: 1, Y: 1}})

	_, err = TraceSnake(New(4, 4))
	c.Assert(err, qt.ErrorMatches, "no snake head on map")

	g, err = Parse(`
#####
#hs.#
#####`)
	c.Assert(err, qt.IsNil)
	_, err = TraceSnake(g)
	c.Assert(err, qt.ErrorMatches, `snake body ends at \(2,1\) without a tail`)
}
