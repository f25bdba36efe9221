package engine

// LevelThreshold is the XP cost of one level. Stored XP is always
// renormalized below it; the surplus carries into level-ups.
const LevelThreshold = 100

// DefaultXPGain applies to any category outside the gain table.
const DefaultXPGain = 10

var xpGainByCategory = map[Category]int{
	CategoryMind:     15,
	CategoryFitness:  20,
	CategoryVitality: 10,
	CategoryWealth:   15,
	CategoryCharisma: 10,
}

// XPGain returns the XP awarded for completing a task of the given
// category.
func XPGain(c Category) int {
	if gain, ok := xpGainByCategory[c]; ok {
		return gain
	}
	return DefaultXPGain
}

// ApplyXP adds gain to the profile progress and rolls surplus XP into
// level increments. A single large gain can jump multiple levels.
// Post-condition: 0 <= xp < LevelThreshold.
func ApplyXP(level, xp, gain int) (newLevel, newXP int) {
	xp += gain
	for xp >= LevelThreshold {
		level++
		xp -= LevelThreshold
	}
	return level, xp
}
