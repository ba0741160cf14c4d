package domain

// Agent — поведенческая запись живого NPC.
//
// Существует только у NPC с живым персонажем: смерть снимает компонент,
// а планировщик дополнительно вычищает осиротевшие записи перед ходом.
type Agent struct {
	// LastDecision — решение прошлого хода. Планировщик записывает его
	// после каждого хода; сейчас используется логами и отладкой.
	LastDecision Command `json:"lastDecision"`
}

func NewAgent() Agent {
	return Agent{LastDecision: WaitCommand()}
}
