package config

// StateID identifies an entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Player states
	Idle StateID = iota
	Running
	Jump
	Fall
	Hit
	Die

	// Hostile states
	Walk

	// Hazard states
	SpikeCycle
	BoosterIdle

	// One-shot effects
	JumpDust
	LandDust
	BoostBurst
	HitSpark
)

// StateToFileName maps StateID to the sprite sheet file name prefix.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Jump:    "jump",
	Fall:    "fall",
	Hit:     "hit",
	Die:     "die",

	Walk: "walk",

	SpikeCycle:  "spike",
	BoosterIdle: "idle",

	JumpDust:   "jump_dust",
	LandDust:   "land_dust",
	BoostBurst: "boost_burst",
	HitSpark:   "hit_spark",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}
