package game

// опыт на каждый уровень
const XPPerLevel int64 = 100

// порог опыта для перехода на следующий уровень
func Threshold(level int64) int64 {
	return level * XPPerLevel
}

// начисляет опыт и повышает уровень.
// Порог проверяется один раз за вызов: даже если delta покрывает
// несколько порогов, уровень растет только на 1.
func ApplyXP(level, xp, delta int64) (newLevel, newXP int64) {
	newLevel, newXP = level, xp+delta
	threshold := Threshold(level)
	if newXP >= threshold {
		newLevel++
		newXP -= threshold
	}
	return newLevel, newXP
}

// опыт за игру: bet/10 всегда плюс winAmount/20 за победу
func XPEarned(bet int64, won bool, winAmount int64) int64 {
	xp := bet / 10
	if won {
		xp += winAmount / 20
	}
	return xp
}
