package domain

// HitPoints — здоровье персонажа.
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewFullHitPoints создаёт здоровье, заполненное до максимума.
func NewFullHitPoints(max int) HitPoints {
	return HitPoints{Current: max, Max: max}
}

// TakeDamage наносит урон. Возвращает true, если цель погибла.
// Current никогда не опускается ниже нуля.
func (hp *HitPoints) TakeDamage(amount int) bool {
	if hp.Current == 0 {
		return false
	}

	if amount < 0 {
		amount = 0
	}

	hp.Current -= amount

	if hp.Current <= 0 {
		hp.Current = 0
		return true
	}
	return false
}

// Heal лечит персонажа, не превышая максимум.
func (hp *HitPoints) Heal(amount int) {
	if hp.Current == 0 {
		return // трупы не лечим
	}
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
}

// IsDead сообщает, что здоровье исчерпано.
func (hp HitPoints) IsDead() bool {
	return hp.Current == 0
}
