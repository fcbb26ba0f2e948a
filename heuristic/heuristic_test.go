package heuristic

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/cmars/gridsnek/grid"
)

// serpent lays a snake of the given length back and forth across the
// interior of a w×h map, head at (1,1).
func serpent(w, h, length int) grid.Snake {
	var body grid.Snake
	for y := 1; y < h-1 && len(body) < length; y++ {
		for i := 0; i < w-2 && len(body) < length; i++ {
			x := 1 + i
			if y%2 == 0 {
				x = w - 2 - i
			}
			body = append(body, grid.Position{X: x, Y: y})
		}
	}
	return body
}

func situation(w, h int, body grid.Snake, bonus grid.Position) Situation {
	g := grid.New(w, h)
	g.PlaceSnake(body)
	g.Set(bonus, grid.Bonus)
	return NewSituation(g, body)
}

func TestScores(t *testing.T) {
	c := qt.New(t)
	w := DefaultWeights()
	next, target := grid.Position{X: 2, Y: 2}, grid.Position{X: 4, Y: 2}
	c.Assert(FollowTailScore(w, next, target, grid.Position{X: 3, Y: 3}, 3), qt.Equals, -172)
	c.Assert(ZigzagScore(w, next, target, 3), qt.Equals, 130)
	c.Assert(AggressiveScore(w, next, target, 3), qt.Equals, -310)
}

func TestNewSituationWithoutBonus(t *testing.T) {
	c := qt.New(t)
	body := grid.Snake{{X: 2, Y: 1}, {X: 1, Y: 1}}
	g := grid.New(6, 6)
	g.PlaceSnake(body)
	s := NewSituation(g, body)
	c.Assert(s.Bonus, qt.Equals, grid.Position{X: 1, Y: 1})
}

func TestFollowTailShortTargetsBonus(t *testing.T) {
	c := qt.New(t)
	f := &FollowTail{W: DefaultWeights(), T: DefaultThresholds()}
	bonus := grid.Position{X: 20, Y: 20}
	for n := 1; n <= 5; n++ {
		s := situation(22, 22, serpent(22, 22, n), bonus)
		c.Assert(f.Target(s), qt.Equals, bonus, qt.Commentf("length %d", n))
	}
}

func TestFollowTailTolerance(t *testing.T) {
	c := qt.New(t)
	f := &FollowTail{W: DefaultWeights(), T: DefaultThresholds()}
	var body grid.Snake
	for y := 5; y <= 13; y++ {
		body = append(body, grid.Position{X: 5, Y: y})
	}
	// 22×22 map, length 9: tolerance is max(5, 11-3) = 8.
	onTheWay := grid.Position{X: 9, Y: 9}
	c.Assert(f.Target(situation(22, 22, body, onTheWay)), qt.Equals, onTheWay)
	tooFar := grid.Position{X: 10, Y: 9}
	c.Assert(f.Target(situation(22, 22, body, tooFar)), qt.Equals, body.Tail())

	c.Assert(f.Choose(situation(22, 22, body, onTheWay)), qt.Equals, grid.East)
}

func TestZigzagSweep(t *testing.T) {
	tests := []struct {
		name string
		body grid.Snake
		want grid.Action
	}{{
		name: "sweep east",
		body: grid.Snake{{X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}},
		want: grid.East,
	}, {
		name: "descend at east edge",
		body: grid.Snake{{X: 7, Y: 1}, {X: 6, Y: 1}, {X: 5, Y: 1}, {X: 4, Y: 1}},
		want: grid.South,
	}, {
		name: "sweep west",
		body: grid.Snake{{X: 5, Y: 3}, {X: 6, Y: 3}, {X: 7, Y: 3}, {X: 8, Y: 3}},
		want: grid.West,
	}, {
		name: "cornered falls back to scoring",
		body: grid.Snake{{X: 8, Y: 6}, {X: 7, Y: 6}, {X: 6, Y: 6}},
		want: grid.North,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			z := &Zigzag{W: DefaultWeights(), T: DefaultThresholds()}
			s := situation(10, 8, test.body, grid.Position{X: 1, Y: 6})
			c.Assert(z.Choose(s), qt.Equals, test.want)
		})
	}
}

func TestAggressiveNoValidMove(t *testing.T) {
	c := qt.New(t)
	g, err := grid.Parse(`
#####
#sss#
#sht#
#####`)
	c.Assert(err, qt.IsNil)
	s := Situation{Grid: g, Snake: grid.Snake{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}}}
	a := &Aggressive{W: DefaultWeights()}
	c.Assert(a.Choose(s), qt.Equals, grid.North)
}

func TestDispatcherShortAlwaysAggressive(t *testing.T) {
	c := qt.New(t)
	d := NewDispatcher(DefaultWeights(), DefaultThresholds())
	for n := 1; n <= 5; n++ {
		s := situation(8, 8, serpent(8, 8, n), grid.Position{X: 6, Y: 6})
		c.Assert(d.Select(s).Name(), qt.Equals, "aggressive")
	}
}

func TestDispatcherNearBonus(t *testing.T) {
	c := qt.New(t)
	d := NewDispatcher(DefaultWeights(), DefaultThresholds())
	body := grid.Snake{
		{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 2, Y: 5},
		{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5},
	}
	s := situation(10, 10, body, grid.Position{X: 3, Y: 2})
	c.Assert(d.Select(s).Name(), qt.Equals, "aggressive")
	c.Assert(d.Choose(s), qt.Equals, grid.East)
}

func TestDispatcherCrowdedZigzag(t *testing.T) {
	c := qt.New(t)
	d := NewDispatcher(DefaultWeights(), DefaultThresholds())
	// 65 of the 100 interior cells.
	s := situation(12, 12, serpent(12, 12, 65), grid.Position{X: 10, Y: 10})
	c.Assert(d.Select(s).Name(), qt.Equals, "zigzag")
}

func TestDispatcherDetourAndDefault(t *testing.T) {
	c := qt.New(t)
	d := NewDispatcher(DefaultWeights(), DefaultThresholds())
	body := serpent(30, 30, 20)

	far := situation(30, 30, body, grid.Position{X: 25, Y: 25})
	c.Assert(d.Select(far).Name(), qt.Equals, "zigzag")

	near := situation(30, 30, body, grid.Position{X: 10, Y: 12})
	c.Assert(d.Select(near).Name(), qt.Equals, "follow_tail")
}
