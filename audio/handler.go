package audio

import (
	"github.com/lixenwraith/mask-arena/combat"
	"github.com/lixenwraith/mask-arena/match"
	"github.com/lixenwraith/mask-arena/player"
)

// AttachCues subscribes p to match and player notifications
// Cooldown rejections stay silent; other blocked attacks buzz
func AttachCues(p Player, m *match.Controller, players *player.Controller) (detach func()) {
	unsubs := []func(){
		m.OnCountdownTick(func(n int) {
			if n == 1 {
				p.Play(CueCountdownFinal)
				return
			}
			p.Play(CueCountdown)
		}),
		m.OnAttackResult(func(r combat.Result) {
			switch {
			case !r.Outcome.Blocked():
				p.Play(CueHit)
			case r.Outcome != combat.OutcomeBlockedCooldown:
				p.Play(CueBlocked)
			}
		}),
		m.OnMatchEnd(func(match.EndResult) {
			p.Play(CueMatchEnd)
		}),
	}
	if players != nil {
		unsubs = append(unsubs, players.OnClaim(func(player.Claim) {
			p.Play(CuePickup)
		}))
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
