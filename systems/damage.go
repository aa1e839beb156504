package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// applyDamage returns the health left after a hit. A hit that would leave
// nothing ends the run, so anything but a strictly larger pool drops to 0.
func applyDamage(health, amount int) int {
	if health > amount {
		return health - amount
	}
	return 0
}

// QueueDamage records a hit on the player for UpdateDamage. When two sources
// land in the same frame the larger one wins.
func QueueDamage(playerEntry *donburi.Entry, amount int, continuous bool, source string) {
	if playerEntry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(playerEntry)
		if amount > dmg.Amount {
			dmg.Amount = amount
			dmg.Source = source
		}
		dmg.Continuous = dmg.Continuous || continuous
		return
	}
	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		Continuous: continuous,
		Source:     source,
	})
}

// StopContinuousDamage ends the damage ticking started by a contact.
func StopContinuousDamage(playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.ContinueTakingDamage) {
		playerEntry.RemoveComponent(components.ContinueTakingDamage)
	}
}

// UpdateDamage applies queued hits and ticks continuous damage.
func UpdateDamage(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	if cfg.Debug.DrawColliders && inpututil.IsKeyJustPressed(ebiten.KeyH) {
		QueueDamage(playerEntry, 1, false, "debug")
	}

	processDamageEvent(ecs, playerEntry)
	if !inContact(ecs.World) {
		StopContinuousDamage(playerEntry)
	}
	tickContinuousDamage(ecs, playerEntry)

	if health := components.Health.Get(playerEntry); health.Current <= 0 {
		StartPlayerDeath(ecs, playerEntry, false)
	}
}

func processDamageEvent(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if !playerEntry.HasComponent(components.DamageEvent) {
		return
	}
	dmg := *components.DamageEvent.Get(playerEntry)
	donburi.Remove[components.DamageEventData](playerEntry, components.DamageEvent)

	player := components.Player.Get(playerEntry)
	if dmg.Continuous {
		// Even a blocked hit keeps ticking while the contact lasts.
		if playerEntry.HasComponent(components.ContinueTakingDamage) {
			ctd := components.ContinueTakingDamage.Get(playerEntry)
			if dmg.Amount > ctd.Amount {
				ctd.Amount = dmg.Amount
			}
		} else {
			donburi.Add(playerEntry, components.ContinueTakingDamage, &components.ContinueTakingDamageData{
				Amount: dmg.Amount,
				Timer:  cfg.Hostile.DamageIntervalFrames,
			})
		}
	}
	if player.InvulnFrames > 0 {
		return
	}

	hurtPlayer(ecs, playerEntry, dmg.Amount)
	logging.For("damage").Debug("player hit", "source", dmg.Source, "amount", dmg.Amount,
		"health", components.Health.Get(playerEntry).Current)
}

func tickContinuousDamage(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if !playerEntry.HasComponent(components.ContinueTakingDamage) {
		return
	}
	ctd := components.ContinueTakingDamage.Get(playerEntry)
	ctd.Timer--
	if ctd.Timer > 0 {
		return
	}
	ctd.Timer = cfg.Hostile.DamageIntervalFrames
	hurtPlayer(ecs, playerEntry, ctd.Amount)
}

func hurtPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, amount int) {
	health := components.Health.Get(playerEntry)
	health.Current = applyDamage(health.Current, amount)

	player := components.Player.Get(playerEntry)
	player.InvulnFrames = cfg.Player.InvulnFrames

	PlaySFX(ecs, cfg.SoundDamage)
	TriggerFlash(playerEntry, cfg.Player.FlashTicks, cfg.LightRed)
	TriggerScreenShake(ecs, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
	enterHitState(components.State.Get(playerEntry))

	o := components.Object.Get(playerEntry)
	factory.SpawnHitSpark(ecs, o.X+o.W/2, o.Y+o.H/2+float64(cfg.GridSize)/2)
}
