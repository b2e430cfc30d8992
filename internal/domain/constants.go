package domain

// Параметры энергетической системы ходов
const (
	// ActionThreshold - сколько энергии стоит одно действие.
	// Порог вычитается, а не обнуляется: излишек сохраняется,
	// и быстрые акторы ходят чаще медленных ровно в speed1/speed2 раз.
	ActionThreshold = 100

	// BaseSpeed - нормальная скорость (один ход за цикл из 10 тиков)
	BaseSpeed = 10

	// SpawnEnergyJitter - верхняя граница случайной стартовой энергии.
	// Рассинхронизирует акторов, заспавненных одновременно.
	SpawnEnergyJitter = 100
)

// Параметры восприятия
const (
	VisionRadius = 8
	AggroRadius  = 10
)

// Дальности снарядов игрока
const (
	ZapRange   = 7
	ThrowRange = 5
)

// MaxDepth - последний этаж. Спуск с него - победа.
const MaxDepth = 3
