package domain

// Размеры карты по умолчанию
const (
	DefaultGridWidth  = 40
	DefaultGridHeight = 30
)

// Параметры восприятия
const (
	VisionRadius = 8
)

// Боевые параметры
const (
	BumpDamage = 1
)

// Очки здоровья по типам персонажей
const (
	PlayerHitPoints = 20
	OrcHitPoints    = 2
	TrollHitPoints  = 6
)
