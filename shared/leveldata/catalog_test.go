package leveldata

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Catalog)
	}{
		{
			name: "valid catalog sorted by id",
			yamlContent: `
levels:
  - id: 1
    name: Hostiles
    file: level_01.tmx
    intro:
      text: "Dodge Them"
      anchor: bottom-left
  - id: 0
    name: First Steps
    file: level_00.tmx
    tutorial: true
`,
			validate: func(t *testing.T, c *Catalog) {
				if c.Len() != 2 {
					t.Fatalf("Len() = %d, want 2", c.Len())
				}
				if c.Levels[0].ID != 0 || !c.Levels[0].Tutorial {
					t.Errorf("Levels[0] = %+v", c.Levels[0])
				}
				if c.Levels[1].Intro == nil || c.Levels[1].Intro.Text != "Dodge Them" {
					t.Errorf("Levels[1].Intro = %+v", c.Levels[1].Intro)
				}
			},
		},
		{
			name:        "empty catalog",
			yamlContent: "levels: []\n",
			wantErr:     true,
			errContains: "no levels",
		},
		{
			name: "duplicate id",
			yamlContent: `
levels:
  - {id: 0, file: a.tmx}
  - {id: 0, file: b.tmx}
`,
			wantErr:     true,
			errContains: "duplicate",
		},
		{
			name: "gap in ids",
			yamlContent: `
levels:
  - {id: 0, file: a.tmx}
  - {id: 2, file: b.tmx}
`,
			wantErr:     true,
			errContains: "missing 1",
		},
		{
			name: "not a tmx file",
			yamlContent: `
levels:
  - {id: 0, file: a.json}
`,
			wantErr:     true,
			errContains: "not a .tmx",
		},
		{
			name: "bad anchor",
			yamlContent: `
levels:
  - id: 0
    file: a.tmx
    intro: {text: hi, anchor: middle}
`,
			wantErr:     true,
			errContains: "anchor",
		},
		{
			name:        "invalid yaml",
			yamlContent: "levels: [",
			wantErr:     true,
			errContains: "parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCatalog([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, c)
			}
		})
	}
}

func TestCatalogLookupAndNext(t *testing.T) {
	c, err := ParseCatalog([]byte(`
levels:
  - {id: 0, file: a.tmx}
  - {id: 1, file: b.tmx}
`))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	if l, err := c.Lookup(1); err != nil || l.File != "b.tmx" {
		t.Errorf("Lookup(1) = %+v, %v", l, err)
	}
	if _, err := c.Lookup(5); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Lookup(5) error = %v, want ErrLevelNotFound", err)
	}
	if next, ok := c.Next(0); !ok || next != 1 {
		t.Errorf("Next(0) = %d, %v; want 1, true", next, ok)
	}
	if _, ok := c.Next(1); ok {
		t.Error("Next(1) should report the end of the catalog")
	}
}

func TestLoadCatalog(t *testing.T) {
	fallback := []byte("levels:\n  - {id: 0, file: fallback.tmx}\n")

	t.Run("custom path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, []byte("levels:\n  - {id: 0, file: custom.tmx}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := LoadCatalog(path, fallback)
		if err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if c.Levels[0].File != "custom.tmx" {
			t.Errorf("File = %q, want custom.tmx", c.Levels[0].File)
		}
	})

	t.Run("missing custom path", func(t *testing.T) {
		if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"), fallback); err == nil {
			t.Error("expected error for missing custom catalog")
		}
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())
		c, err := LoadCatalog("", fallback)
		if err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if c.Levels[0].File != "fallback.tmx" {
			t.Errorf("File = %q, want fallback.tmx", c.Levels[0].File)
		}
	})

	t.Run("user catalog", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())
		writeCatalog(t, filepath.Join(home, ".shadow-runner", "catalog.yaml"), "levels:\n  - {id: 0, file: user.tmx}\n")

		c, err := LoadCatalog("", fallback)
		if err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if c.Levels[0].File != "user.tmx" {
			t.Errorf("File = %q, want user.tmx", c.Levels[0].File)
		}
	})

	malformed := []struct {
		name string
		path func(home, dir string) string
	}{
		{"malformed user catalog", func(home, _ string) string {
			return filepath.Join(home, ".shadow-runner", "catalog.yaml")
		}},
		{"malformed configs catalog", func(_, dir string) string {
			return filepath.Join(dir, "configs", "catalog.yaml")
		}},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			home, dir := t.TempDir(), t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(dir)
			path := tt.path(home, dir)
			writeCatalog(t, path, "levels: [this is not: valid")

			_, err := LoadCatalog("", fallback)
			if err == nil {
				t.Fatal("expected error for a malformed catalog")
			}
			if !strings.Contains(err.Error(), "catalog.yaml") {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCatalogIcons(t *testing.T) {
	c := &Catalog{Levels: []CatalogLevel{
		{ID: 0, Intro: &Intro{Legend: []LegendEntry{{Icon: "spike.png"}, {Icon: "gate.png"}}}},
		{ID: 1},
		{ID: 2, Intro: &Intro{Text: "no legend"}},
		{ID: 3, Intro: &Intro{Legend: []LegendEntry{{Icon: "gate.png"}, {Icon: ""}, {Icon: "booster.png"}}}},
	}}

	want := []string{"spike.png", "gate.png", "booster.png"}
	got := c.Icons()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Icons() = %v, want %v", got, want)
	}
}
