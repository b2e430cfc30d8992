package domain

// EventType - внутренний числовой идентификатор события движка.
// События рождаются в хендлерах и потребляются сервисом, по проводу
// не ходят, поэтому парсер строк им не нужен.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventLevelTransition
	EventVictory
)

var eventCmdToString = map[EventType]string{
	EventLevelTransition: "LEVEL_TRANSITION",
	EventVictory:         "VICTORY",
}

func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}
