package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog lists the playable levels in order.
type Catalog struct {
	Levels []CatalogLevel `yaml:"levels"`
}

// CatalogLevel describes one level of the catalog.
type CatalogLevel struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	File     string `yaml:"file"`
	Tutorial bool   `yaml:"tutorial"`
	Intro    *Intro `yaml:"intro,omitempty"`
}

// Intro is the on-screen text shown when a level starts.
type Intro struct {
	Text string `yaml:"text"`
	// Seconds before the intro disappears. Zero means the default.
	Seconds float64       `yaml:"seconds"`
	Anchor  string        `yaml:"anchor"`
	Legend  []LegendEntry `yaml:"legend"`
}

// LegendEntry pairs an icon with a caption.
type LegendEntry struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
}

// Anchors accepted by Intro.Anchor.
const (
	AnchorTopLeft     = "top-left"
	AnchorBottomLeft  = "bottom-left"
	AnchorBottom      = "bottom"
	AnchorBottomRight = "bottom-right"
)

// Icons lists every legend icon named by the catalog, once each, in
// catalog order.
func (c *Catalog) Icons() []string {
	var icons []string
	seen := make(map[string]bool)
	for _, level := range c.Levels {
		if level.Intro == nil {
			continue
		}
		for _, entry := range level.Intro.Legend {
			if entry.Icon == "" || seen[entry.Icon] {
				continue
			}
			seen[entry.Icon] = true
			icons = append(icons, entry.Icon)
		}
	}
	return icons
}

// Lookup returns the level with the given id.
func (c *Catalog) Lookup(id int) (CatalogLevel, error) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, nil
		}
	}
	return CatalogLevel{}, fmt.Errorf("level %d: %w", id, ErrLevelNotFound)
}

// Next returns the id following id, and false when id is the last level.
func (c *Catalog) Next(id int) (int, bool) {
	if _, err := c.Lookup(id + 1); err != nil {
		return 0, false
	}
	return id + 1, true
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.Levels)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := ValidateCatalog(&c); err != nil {
		return nil, err
	}
	sort.Slice(c.Levels, func(i, j int) bool {
		return c.Levels[i].ID < c.Levels[j].ID
	})
	return &c, nil
}

// ValidateCatalog checks that level ids form the range 0..n-1 and that every
// level points at a TMX file.
func ValidateCatalog(c *Catalog) error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("catalog has no levels")
	}

	seen := make(map[int]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID < 0 {
			return fmt.Errorf("level id %d: must be non-negative", l.ID)
		}
		if seen[l.ID] {
			return fmt.Errorf("level id %d: duplicate", l.ID)
		}
		seen[l.ID] = true

		if !strings.HasSuffix(l.File, ".tmx") {
			return fmt.Errorf("level %d: file %q is not a .tmx map", l.ID, l.File)
		}
		if l.Intro != nil {
			switch l.Intro.Anchor {
			case "", AnchorTopLeft, AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
			default:
				return fmt.Errorf("level %d: unknown intro anchor %q", l.ID, l.Intro.Anchor)
			}
		}
	}

	for id := 0; id < len(c.Levels); id++ {
		if !seen[id] {
			return fmt.Errorf("level ids must be contiguous from 0: missing %d", id)
		}
	}

	return nil
}

// LoadCatalog loads the level catalog.
// Search order: customPath -> ~/.shadow-runner/catalog.yaml -> ./configs/catalog.yaml -> fallback
// The first file that exists wins; if it cannot be parsed the error is
// returned instead of falling through to the next one.
func LoadCatalog(customPath string, fallback []byte) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", customPath, err)
		}
		c, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", customPath, err)
		}
		return c, nil
	}

	candidates := []string{filepath.Join("configs", "catalog.yaml")}
	if userPath := userConfigPath("catalog.yaml"); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, candidate := range candidates {
		c, err := loadCatalogFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return c, err
	}

	return ParseCatalog(fallback)
}

// loadCatalogFile reads and parses one catalog file. A missing file is
// reported as fs.ErrNotExist so the caller can move on; anything else is a
// content error.
func loadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shadow-runner", filename)
}
