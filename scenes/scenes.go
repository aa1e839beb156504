package scenes

import (
	"github.com/automoto/shadow-runner/shared/leveldata"
)

// SceneChanger allows scenes to trigger transitions. It also hands out the
// level catalog every scene reads from.
type SceneChanger interface {
	ChangeScene(scene interface{})
	Catalog() *leveldata.Catalog
}

// resumeLevel returns the level Play starts at: the furthest unlocked one,
// kept inside the catalog.
func resumeLevel(catalog *leveldata.Catalog, unlocked int) int {
	last := catalog.Len() - 1
	if unlocked > last {
		return last
	}
	if unlocked < 0 {
		return 0
	}
	return unlocked
}
