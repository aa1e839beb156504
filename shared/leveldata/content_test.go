package leveldata

import (
	"os"
	"testing"
)

// The shipped catalog lives with the embedded assets.
const shippedLevels = "../../assets/levels"

func TestShippedLevels(t *testing.T) {
	data, err := os.ReadFile(shippedLevels + "/catalog.yaml")
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	fsys := os.DirFS(shippedLevels)
	for _, level := range catalog.Levels {
		level := level
		t.Run(level.Name, func(t *testing.T) {
			grid, err := LoadWallGrid(fsys, level.File)
			if err != nil {
				t.Fatalf("LoadWallGrid() error = %v", err)
			}
			if grid.Skipped != 0 {
				t.Errorf("Skipped = %d, want 0", grid.Skipped)
			}

			var gate bool
			for _, r := range grid.Rectangles() {
				if r.Kind == KindNextLevel {
					gate = true
				}
			}
			if !gate {
				t.Error("level has no next-level tiles")
			}

			layout, err := LoadLayout(fsys, level.File)
			if err != nil {
				t.Fatalf("LoadLayout() error = %v", err)
			}
			if layout.Spawn == (Point{}) {
				t.Error("level has no player spawn")
			}
			for _, h := range layout.Hostiles {
				if len(h.Patrol) < 2 {
					t.Errorf("hostile %s at (%v, %v) has no patrol path", h.Type, h.Area.X, h.Area.Y)
				}
			}
		})
	}
}
