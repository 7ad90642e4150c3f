package engine

const (
	// XPPerLevel is the flat level width: level = floor(xp / 100).
	XPPerLevel = 100

	// LevelUpCoinBonus is granted once per completion that crosses one or
	// more level boundaries, regardless of how many were crossed.
	LevelUpCoinBonus = 100

	// MaxHealth and MinHealth bound the pet health stat.
	MaxHealth = 100
	MinHealth = 0
)

// LevelForXP returns the level for a total XP value. Level is always derived
// from XP; the persisted level field is display cache only.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	return xp / XPPerLevel
}

// NextLevelXP returns the XP threshold at which the next level is reached.
func NextLevelXP(xp int) int {
	return (LevelForXP(xp) + 1) * XPPerLevel
}

// ClampHealth bounds a health value to [MinHealth, MaxHealth].
func ClampHealth(h int) int {
	if h < MinHealth {
		return MinHealth
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}
