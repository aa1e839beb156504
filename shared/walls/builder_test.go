package walls

import (
	"math/rand"
	"reflect"
	"testing"
)

// grid is a sparse cell map used to drive BuildRectangles in tests.
type grid struct {
	w, h  int
	cells map[[2]int]int
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make(map[[2]int]int)}
}

func (g *grid) set(x, y, kind int) *grid {
	g.cells[[2]int{x, y}] = kind
	return g
}

func (g *grid) kindAt(x, y int) (int, bool) {
	k, ok := g.cells[[2]int{x, y}]
	return k, ok
}

func (g *grid) build() []Rect[int] {
	return BuildRectangles(g.w, g.h, g.kindAt)
}

func TestBuildRectangles(t *testing.T) {
	tests := []struct {
		name string
		grid *grid
		want []Rect[int]
	}{
		{
			name: "empty grid",
			grid: newGrid(4, 3),
			want: nil,
		},
		{
			name: "single full row",
			grid: newGrid(4, 1).set(0, 0, 1).set(1, 0, 1).set(2, 0, 1).set(3, 0, 1),
			want: []Rect[int]{{Left: 0, Right: 3, Bottom: 0, Top: 0, Kind: 1}},
		},
		{
			name: "solid block",
			grid: newGrid(3, 2).
				set(0, 0, 1).set(1, 0, 1).set(2, 0, 1).
				set(0, 1, 1).set(1, 1, 1).set(2, 1, 1),
			want: []Rect[int]{{Left: 0, Right: 2, Bottom: 0, Top: 1, Kind: 1}},
		},
		{
			name: "L shape does not stack mismatched plates",
			grid: newGrid(3, 2).set(0, 0, 1).set(1, 0, 1).set(2, 0, 1).set(0, 1, 1),
			want: []Rect[int]{
				{Left: 0, Right: 2, Bottom: 0, Top: 0, Kind: 1},
				{Left: 0, Right: 0, Bottom: 1, Top: 1, Kind: 1},
			},
		},
		{
			name: "adjacent cells of different kinds stay apart",
			grid: newGrid(2, 1).set(0, 0, 1).set(1, 0, 2),
			want: []Rect[int]{
				{Left: 0, Right: 0, Bottom: 0, Top: 0, Kind: 1},
				{Left: 1, Right: 1, Bottom: 0, Top: 0, Kind: 2},
			},
		},
		{
			name: "checkerboard",
			grid: newGrid(2, 2).set(0, 0, 1).set(1, 1, 1),
			want: []Rect[int]{
				{Left: 0, Right: 0, Bottom: 0, Top: 0, Kind: 1},
				{Left: 1, Right: 1, Bottom: 1, Top: 1, Kind: 1},
			},
		},
		{
			name: "run touching right edge is closed",
			grid: newGrid(3, 1).set(1, 0, 1).set(2, 0, 1),
			want: []Rect[int]{{Left: 1, Right: 2, Bottom: 0, Top: 0, Kind: 1}},
		},
		{
			name: "column touching top edge is closed",
			grid: newGrid(1, 3).set(0, 0, 3).set(0, 1, 3).set(0, 2, 3),
			want: []Rect[int]{{Left: 0, Right: 0, Bottom: 0, Top: 2, Kind: 3}},
		},
		{
			name: "gap splits a column",
			grid: newGrid(1, 3).set(0, 0, 1).set(0, 2, 1),
			want: []Rect[int]{
				{Left: 0, Right: 0, Bottom: 0, Top: 0, Kind: 1},
				{Left: 0, Right: 0, Bottom: 2, Top: 2, Kind: 1},
			},
		},
		{
			name: "stacked rows of different kinds",
			grid: newGrid(2, 2).set(0, 0, 1).set(1, 0, 1).set(0, 1, 2).set(1, 1, 2),
			want: []Rect[int]{
				{Left: 0, Right: 1, Bottom: 0, Top: 0, Kind: 1},
				{Left: 0, Right: 1, Bottom: 1, Top: 1, Kind: 2},
			},
		},
		{
			name: "zero width",
			grid: newGrid(0, 5),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.grid.build()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildRectangles() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func randomGrid(r *rand.Rand, w, h, kinds int, density float64) *grid {
	g := newGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < density {
				g.set(x, y, 1+r.Intn(kinds))
			}
		}
	}
	return g
}

func TestBuildRectanglesProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		g := randomGrid(r, 1+r.Intn(24), 1+r.Intn(24), 1+r.Intn(3), r.Float64())
		rects := g.build()

		covered := make(map[[2]int]int)
		for _, rect := range rects {
			if rect.Left > rect.Right || rect.Bottom > rect.Top {
				t.Fatalf("grid %d: malformed rect %+v", i, rect)
			}
			for y := rect.Bottom; y <= rect.Top; y++ {
				for x := rect.Left; x <= rect.Right; x++ {
					key := [2]int{x, y}
					if _, dup := covered[key]; dup {
						t.Fatalf("grid %d: cell %v covered twice", i, key)
					}
					kind, ok := g.kindAt(x, y)
					if !ok {
						t.Fatalf("grid %d: rect %+v covers empty cell %v", i, rect, key)
					}
					if kind != rect.Kind {
						t.Fatalf("grid %d: rect kind %d over cell kind %d at %v", i, rect.Kind, kind, key)
					}
					covered[key] = rect.Kind
				}
			}
		}

		if len(covered) != len(g.cells) {
			t.Fatalf("grid %d: covered %d cells, want %d", i, len(covered), len(g.cells))
		}

		if again := g.build(); !reflect.DeepEqual(rects, again) {
			t.Fatalf("grid %d: second build differs:\n%+v\n%+v", i, rects, again)
		}

		painted := newGrid(g.w, g.h)
		for _, rect := range rects {
			for y := rect.Bottom; y <= rect.Top; y++ {
				for x := rect.Left; x <= rect.Right; x++ {
					painted.set(x, y, rect.Kind)
				}
			}
		}
		if rebuilt := painted.build(); !reflect.DeepEqual(rects, rebuilt) {
			t.Fatalf("grid %d: rebuild from painted output differs:\n%+v\n%+v", i, rects, rebuilt)
		}
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect[string]{Left: 2, Right: 5, Bottom: 1, Top: 3, Kind: "solid"}

	if r.Width() != 4 {
		t.Errorf("Width() = %d, want 4", r.Width())
	}
	if r.Height() != 3 {
		t.Errorf("Height() = %d, want 3", r.Height())
	}
	if !r.Contains(5, 3) || r.Contains(6, 3) || r.Contains(2, 0) {
		t.Errorf("Contains() boundaries wrong for %+v", r)
	}
}

func BenchmarkBuildRectangles(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(1)), 200, 100, 3, 0.6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.build()
	}
}
