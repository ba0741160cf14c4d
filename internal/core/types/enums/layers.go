package enums

import "strings"

// Layer — слой клетки в пространственном индексе.
//
// Значения подряд от нуля: Layer используется как индекс массива слотов
// клетки. Corpse не является самостоятельным слоем отрисовки: труп
// рисуется в слоте Character, когда тот пуст.
type Layer uint8

const (
	LayerFloor Layer = iota
	LayerFeature
	LayerCharacter
	LayerCorpse

	// NumLayers — размер массива слотов одной клетки.
	NumLayers = 4

	// LayerNone — отсутствие слоя: сущность занимает клетку,
	// но не слот, и не участвует в проверках занятости.
	LayerNone Layer = NumLayers
)

var layerToString = map[Layer]string{
	LayerFloor:     "FLOOR",
	LayerFeature:   "FEATURE",
	LayerCharacter: "CHARACTER",
	LayerCorpse:    "CORPSE",
	LayerNone:      "NONE",
}

var layerStringToLayer = map[string]Layer{
	"FLOOR":     LayerFloor,
	"FEATURE":   LayerFeature,
	"CHARACTER": LayerCharacter,
	"CORPSE":    LayerCorpse,
	"NONE":      LayerNone,
}

// String возвращает строковое представление (для логов и дебага)
func (l Layer) String() string {
	if val, ok := layerToString[l]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseLayer конвертирует строку в Enum
func ParseLayer(s string) (Layer, bool) {
	upper := strings.ToUpper(s)
	val, ok := layerStringToLayer[upper]
	return val, ok
}
