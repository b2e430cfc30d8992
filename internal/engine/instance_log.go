package engine

import (
	"fmt"
	"time"

	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

// AddLog добавляет запись в буфер логов уровня.
// Буфер очищается после рассылки клиентам.
func (i *Instance) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
