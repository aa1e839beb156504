package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	// Hold keeps the last frame up instead of looping.
	Hold bool
}

func walkCycle() map[StateID]AnimationDef {
	return map[StateID]AnimationDef{
		Walk: {First: 0, Last: 3, Step: 1, Speed: 8},
	}
}

// CharacterAnimations maps a sprite sheet key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 10},
		Running: {First: 0, Last: 5, Step: 1, Speed: 5},
		Jump:    {First: 0, Last: 1, Step: 1, Speed: 8},
		Fall:    {First: 0, Last: 1, Step: 1, Speed: 8},
		Hit:     {First: 0, Last: 1, Step: 1, Speed: 4},
		Die:     {First: 0, Last: 5, Step: 1, Speed: 6, Hold: true},
	},
	"sand_ghoul":         walkCycle(),
	"grave_revenant":     walkCycle(),
	"mutilated_stumbler": walkCycle(),
	"adept_necromancer":  walkCycle(),
	// Six frames at a quarter second each
	"spike": {
		SpikeCycle: {First: 0, Last: 5, Step: 1, Speed: 15},
	},
	"booster": {
		BoosterIdle: {First: 0, Last: 3, Step: 1, Speed: 8},
	},
	"vfx": {
		JumpDust:   {First: 0, Last: 3, Step: 1, Speed: 3},
		LandDust:   {First: 0, Last: 3, Step: 1, Speed: 3},
		BoostBurst: {First: 0, Last: 4, Step: 1, Speed: 3},
		HitSpark:   {First: 0, Last: 3, Step: 1, Speed: 2},
	},
}
