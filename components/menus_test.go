package components

import "testing"

func TestCursorStep(t *testing.T) {
	tests := []struct {
		name         string
		row, delta   int
		n, wantAfter int
	}{
		{"down", 0, 1, 4, 1},
		{"wraps past bottom", 3, 1, 4, 0},
		{"wraps past top", 0, -1, 4, 3},
		{"large jump", 1, -6, 4, 3},
		{"empty list", 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cursor{Row: tt.row}
			c.Step(tt.delta, tt.n)
			if c.Row != tt.wantAfter {
				t.Errorf("Step(%d, %d) from %d = %d, want %d", tt.delta, tt.n, tt.row, c.Row, tt.wantAfter)
			}
		})
	}
}
