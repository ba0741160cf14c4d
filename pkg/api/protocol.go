package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира, видимого клиенту после
// очередного хода: только разведанные клетки, только видимые сущности.
type ServerResponse struct {
	// Type тип сообщения: "INIT" для первого кадра, дальше "UPDATE".
	Type string `json:"type"`

	// Turn номер хода. Увеличивается после каждого действия игрока.
	Turn uint64 `json:"turn"`

	// PlayerAlive false, когда игрок погиб и симуляция окончена.
	PlayerAlive bool `json:"playerAlive"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех разведанных тайлов (видимых сейчас или по памяти).
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO (Data Transfer Object) для одного тайла карты.
// Содержит всю необходимую информацию для его рендеринга.
//
// Для видимых клеток это текущее содержимое, для разведанных, но не
// видимых — то, что игрок запомнил в момент последнего взгляда.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден. Используется для
	// "тумана войны": IsVisible=false при IsExplored=true рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности в поле зрения.
type EntityView struct {
	// ID сущности в десятичной записи (uint64 не переживает JavaScript).
	ID string `json:"id"`

	// Type категория: PLAYER или NPC. Трупы приходят в составе Map.
	Type string `json:"type"`

	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Hp здоровье персонажа. Отсутствует у стен и прочих неживых сущностей.
	Hp *HpView `json:"hp,omitempty"`
}

// HpView это DTO для здоровья сущности.
type HpView struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (e.g. MOVE).
// Допустимы только кардинальные единичные шаги.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload используется для действий, нацеленных на точку на карте (e.g. TELEPORT).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
