package enums

// VisibilityState — состояние видимости клетки для игрока.
//
// Переходы монотонны: Never -> Previously/Currently -> Previously ->
// Currently. Клетка, увиденная хотя бы раз, больше никогда не
// возвращается в Never.
type VisibilityState uint8

const (
	VisibilityNever VisibilityState = iota
	VisibilityPreviously
	VisibilityCurrently
)

var visibilityToString = map[VisibilityState]string{
	VisibilityNever:      "NEVER",
	VisibilityPreviously: "PREVIOUSLY",
	VisibilityCurrently:  "CURRENTLY",
}

// String возвращает строковое представление (для логов и дебага)
func (v VisibilityState) String() string {
	if val, ok := visibilityToString[v]; ok {
		return val
	}
	return "UNKNOWN"
}
