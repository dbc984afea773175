package core

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestGridBuilderFinalize(t *testing.T) {
	b := NewGridBuilder[int](6)
	for i := 0; i < 6; i++ {
		b.Append(i)
	}
	g, err := b.Finalize(3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.W, g.H)
	}
	// Row-major: (x, y) -> y*W + x.
	if got := g.At(2, 0); got != 2 {
		t.Fatalf("At(2,0) = %d, expected 2", got)
	}
	if got := g.At(0, 1); got != 3 {
		t.Fatalf("At(0,1) = %d, expected 3", got)
	}
	if got := g.At(2, 1); got != 5 {
		t.Fatalf("At(2,1) = %d, expected 5", got)
	}
}

func TestGridBuilderRejectsCountMismatch(t *testing.T) {
	b := NewGridBuilder[int](0)
	for i := 0; i < 5; i++ {
		b.Append(i)
	}
	if _, err := b.Finalize(3, 2); err == nil {
		t.Fatal("expected finalize to fail when count does not match dimensions")
	}
	if _, err := b.Finalize(5, 1); err != nil {
		t.Fatalf("expected 5x1 to succeed, got %v", err)
	}
}

func TestGridSetLookupAndEach(t *testing.T) {
	g := NewGrid(4, 3, func(x, y int) int { return x * 10 })
	g.Set(1, 2, 99)
	if v, ok := g.Lookup(1, 2); !ok || v != 99 {
		t.Fatalf("Lookup(1,2) = %d,%v, expected 99,true", v, ok)
	}
	if _, ok := g.Lookup(4, 0); ok {
		t.Fatal("expected out-of-bounds lookup to fail")
	}

	var visited []Coord
	g.Each(func(c Coord, _ int) { visited = append(visited, c) })
	if len(visited) != 12 {
		t.Fatalf("expected 12 visited cells, got %d", len(visited))
	}
	if visited[0] != (Coord{0, 0}) || visited[1] != (Coord{1, 0}) || visited[4] != (Coord{0, 1}) {
		t.Fatalf("expected row-major iteration, got %v", visited[:5])
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected At outside the grid to panic")
		}
	}()
	g.At(-1, 0)
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	var va, vb []float64
	for i := 0; i < 32; i++ {
		va = append(va, a.Float64())
		vb = append(vb, b.Float64())
	}
	if !slices.Equal(va, vb) {
		t.Fatal("same seed produced different streams")
	}
	c := NewRNG(8)
	if c.Float64() == va[0] {
		t.Fatal("different seeds should produce different streams")
	}
}

func TestRNGOneIn(t *testing.T) {
	r := NewRNG(1)
	if !r.OneIn(1) {
		t.Fatal("OneIn(1) must always be true")
	}
	hits := 0
	const n = 6000
	for i := 0; i < n; i++ {
		if r.OneIn(6) {
			hits++
		}
	}
	if hits < n/6-200 || hits > n/6+200 {
		t.Fatalf("OneIn(6) hit %d/%d times, expected about %d", hits, n, n/6)
	}
}

func TestSigmoidBounds(t *testing.T) {
	if got := Sigmoid(0, 5); got != 0 {
		t.Fatalf("Sigmoid(0) = %f, expected 0", got)
	}
	for _, x := range []float64{-3, -0.5, 0.1, 0.8, 2} {
		s := Sigmoid(x, 4)
		if s <= -1 || s >= 1 {
			t.Fatalf("Sigmoid(%f) = %f escaped (-1,1)", x, s)
		}
		if math.Abs(s+Sigmoid(-x, 4)) > 1e-12 {
			t.Fatalf("Sigmoid is not odd at %f", x)
		}
	}
	if Sigmoid(0.1, 30) <= Sigmoid(0.1, 2) {
		t.Fatal("larger amplifier should saturate faster")
	}
	if got := Logistic(0, 2.02); got != 0.5 {
		t.Fatalf("Logistic(0) = %f, expected 0.5", got)
	}
}

func TestStopwatchLaps(t *testing.T) {
	base := time.Unix(0, 0)
	ticks := []time.Duration{0, 5 * time.Millisecond, 12 * time.Millisecond}
	i := 0
	sw := newStopwatch(func() time.Time {
		d := ticks[i]
		i++
		return base.Add(d)
	})
	if d := sw.Lap("sample"); d != 5*time.Millisecond {
		t.Fatalf("first lap = %s, expected 5ms", d)
	}
	if d := sw.Lap("encode"); d != 7*time.Millisecond {
		t.Fatalf("second lap = %s, expected 7ms", d)
	}
	if sw.Total() != 12*time.Millisecond {
		t.Fatalf("total = %s, expected 12ms", sw.Total())
	}
	if laps := sw.Laps(); len(laps) != 2 || laps[1].Name != "encode" {
		t.Fatalf("unexpected laps %+v", laps)
	}
}
