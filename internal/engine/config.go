package engine

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска движка.
// Заполняется из окружения, флаги cmd/server могут переопределить поля.
type Config struct {
	// Port - адрес HTTP/WebSocket сервера
	Port string `env:"PORT" envDefault:"8080"`

	// Seed - мастер-зерно. От него зависят все уровни:
	// Level N Seed = MasterSeed + N
	Seed int64 `env:"GAME_SEED" envDefault:"0"`

	// TurnTimeout - сколько ждем команду игрока, прежде чем сжечь его ход
	TurnTimeout time.Duration `env:"TURN_TIMEOUT" envDefault:"60s"`

	// ReplayDir - куда писать файлы реплеев. Пусто - реплеи не сохраняются.
	ReplayDir string `env:"REPLAY_DIR" envDefault:""`
}

// LoadConfig читает конфиг из окружения.
// Нулевой сид заменяется на текущее время (каждый запуск - новый мир).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
