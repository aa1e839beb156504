package components

import "github.com/yohamta/donburi"

// HealthData counts hearts. The run is lost when Current reaches zero.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// DamageEventData is a pending hit on the player, applied by the damage system.
type DamageEventData struct {
	Amount int
	// Continuous keeps the damage ticking until contact ends.
	Continuous bool
	Source     string
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// ContinueTakingDamageData keeps hurting its entity while a hostile or spike
// stays in contact.
type ContinueTakingDamageData struct {
	Amount int
	Timer  int // ticks until the next hit
}

var ContinueTakingDamage = donburi.NewComponentType[ContinueTakingDamageData]()

// DeathData marks an entity that has started dying. The game over screen
// opens when Timer runs out.
type DeathData struct {
	Timer int
	// OutOfWorld skips the death animation for a fall out of the level.
	OutOfWorld bool
}

var Death = donburi.NewComponentType[DeathData]()
