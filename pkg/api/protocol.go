package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира, видимого для конкретного клиента.
// Отправляется каждый раз, когда наступает ход актора, которым управляет клиент.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE", либо "GAME_OVER" / "VICTORY".
	Type string `json:"type"`

	// Tick текущее время уровня в мировых тиках.
	Tick int `json:"tick"`

	// ActiveActorID ID актора, чей ход сейчас.
	// КЛИЕНТ ДОЛЖЕН СРАВНИВАТЬ ЭТО ПОЛЕ СО СВОИМ ID. Если они совпадают,
	// значит, можно принимать ввод от игрока.
	ActiveActorID string `json:"activeActorId,omitempty"`

	// MyActorID ID актора, которым управляет данный клиент.
	MyActorID string `json:"myActorId,omitempty"`

	// Depth текущий этаж подземелья.
	Depth int `json:"depth,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Actors срез всех видимых акторов.
	Actors []ActorView `json:"actors,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для стены).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// Walkable false, если тайл - непроходимое препятствие.
	Walkable bool `json:"walkable"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден ("туман войны").
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// ActorView это DTO для игрового актора.
type ActorView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // PLAYER, MONSTER
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats характеристики актора. Поле может отсутствовать (omitempty),
	// если клиент не имеет права видеть статы этого актора.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик актора.
type StatsView struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Strength int  `json:"strength,omitempty"`
	Energy   int  `json:"energy,omitempty"`
	Speed    int  `json:"speed,omitempty"`
	IsDead   bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID актора, от имени которого выполняется действие.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ActorPayload используется для действий, нацеленных на другого актора (ATTACK, ZAP).
type ActorPayload struct {
	TargetID string `json:"targetId"`
}

// PositionPayload используется для действий, нацеленных на точку карты (THROW).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LoginPayload отправляется первым сообщением после подключения.
type LoginPayload struct {
	Name string `json:"name,omitempty"`
}
