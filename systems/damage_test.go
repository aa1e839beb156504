package systems

import "testing"

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		health, amount, want int
	}{
		{3, 1, 2},
		{3, 2, 1},
		{3, 3, 0},
		{2, 5, 0},
		{1, 0, 1},
	}

	for _, tt := range tests {
		if got := applyDamage(tt.health, tt.amount); got != tt.want {
			t.Errorf("applyDamage(%d, %d) = %d, want %d", tt.health, tt.amount, got, tt.want)
		}
	}
}
