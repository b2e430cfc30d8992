package domain

import "encoding/json"

// ReplayAction - запись одного действия извне (от игрока)
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Token   ActorID         `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии. Сида и последовательности действий
// достаточно: планировщик и трассировщик детерминированы, реплей
// воспроизводит мир бит в бит.
type ReplaySession struct {
	Depth     int            `json:"depth"`
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
