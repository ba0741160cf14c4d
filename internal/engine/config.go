package engine

import (
	"time"

	"github.com/rpruizc/rustoguelike/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генерации уровня. Один сид - одна и та же карта.
	Seed int64

	// Width и Height - размеры сетки уровня в клетках.
	Width  int
	Height int

	// Omniscient включает отладочный режим зрения: видна вся карта.
	Omniscient bool
}

// NewConfig создает конфиг по умолчанию (случайный сид, стандартная сетка)
func NewConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Width:  domain.DefaultGridWidth,
		Height: domain.DefaultGridHeight,
	}
}
