// Package walls collapses a grid of typed wall cells into a small set of
// axis-aligned rectangles so a level can register one collider per rectangle
// instead of one per tile. It has no dependencies on ebitengine, donburi, or
// resolv.
package walls

// Rect is an inclusive block of grid cells sharing one kind. Bottom is the
// lowest row index covered and Top the highest.
type Rect[K comparable] struct {
	Left, Right int
	Bottom, Top int
	Kind        K
}

// Width returns the number of columns covered.
func (r Rect[K]) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows covered.
func (r Rect[K]) Height() int { return r.Top - r.Bottom + 1 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect[K]) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// plate is a maximal run of same-kind cells in a single row.
type plate[K comparable] struct {
	left, right int
	kind        K
}

// BuildRectangles merges every marked cell of a width x height grid into
// rectangles. kindAt reports the kind of the cell at (x, y), or false when the
// cell is empty. Rows are first split into plates, then identical plates on
// consecutive rows are stacked into one rectangle. The result is greedy, not a
// minimum cover, and is returned in a stable order.
func BuildRectangles[K comparable](width, height int, kindAt func(x, y int) (K, bool)) []Rect[K] {
	if width <= 0 || height <= 0 {
		return nil
	}

	rows := make([][]plate[K], height)
	for y := 0; y < height; y++ {
		rows[y] = scanRow(y, width, kindAt)
	}

	return stackPlates(rows)
}

// scanRow walks one past the last column so a run touching the right edge is
// always closed.
func scanRow[K comparable](y, width int, kindAt func(x, y int) (K, bool)) []plate[K] {
	var (
		plates  []plate[K]
		open    bool
		start   int
		runKind K
	)

	for x := 0; x <= width; x++ {
		var (
			kind K
			ok   bool
		)
		if x < width {
			kind, ok = kindAt(x, y)
		}

		switch {
		case open && ok && kind == runKind:
			// run continues
		case open:
			plates = append(plates, plate[K]{left: start, right: x - 1, kind: runKind})
			open = false
			if ok {
				open, start, runKind = true, x, kind
			}
		case ok:
			open, start, runKind = true, x, kind
		}
	}

	return plates
}

func stackPlates[K comparable](rows [][]plate[K]) []Rect[K] {
	var out []Rect[K]
	building := make(map[plate[K]]*Rect[K])

	// Trailing empty row closes anything still open at the top edge.
	rows = append(rows, nil)

	var prev []plate[K]
	for y, current := range rows {
		inRow := make(map[plate[K]]struct{}, len(current))
		for _, p := range current {
			inRow[p] = struct{}{}
		}

		for _, p := range prev {
			if _, ok := inRow[p]; ok {
				continue
			}
			if r, ok := building[p]; ok {
				out = append(out, *r)
				delete(building, p)
			}
		}

		for _, p := range current {
			if r, ok := building[p]; ok {
				r.Top = y
				continue
			}
			building[p] = &Rect[K]{
				Left:   p.left,
				Right:  p.right,
				Bottom: y,
				Top:    y,
				Kind:   p.kind,
			}
		}

		prev = current
	}

	return out
}
