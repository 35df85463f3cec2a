package parameter

import (
	"time"
)

// Hit Points
const (
	// CombatMaxHealth is each competitor's starting and maximum health
	CombatMaxHealth = 3
)

// Attack
const (
	// CombatAttackDamage is health removed by a landed attack
	CombatAttackDamage = 1

	// CombatAttackRangeFloat is the maximum attacker to defender distance (units)
	CombatAttackRangeFloat = 1.0

	// CombatAttackCooldown is the minimum spacing between two attack attempts
	CombatAttackCooldown = 1 * time.Second
)
