package domain

// EffectKind - вид дальнобойного эффекта. Закрытое перечисление:
// единственный switch по нему живет в systems.ApplyRangedEffect,
// сам трассировщик о видах эффектов не знает. Клиент вид не выбирает
// (снаряд определяется действием), поэтому парсера строк нет.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectFirebolt
	EffectLightning
	EffectThrownRock
	EffectArrow
)

var effectKindToString = map[EffectKind]string{
	EffectFirebolt:   "FIREBOLT",
	EffectLightning:  "LIGHTNING",
	EffectThrownRock: "THROWN_ROCK",
	EffectArrow:      "ARROW",
}

func (k EffectKind) String() string {
	if val, ok := effectKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Effect - снаряд: вид, урон и дальность (в шагах Чебышева)
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Power int        `json:"power"`
	Range int        `json:"range"`
}

// Штатные снаряды
var (
	FireboltEffect   = Effect{Kind: EffectFirebolt, Power: 6, Range: ZapRange}
	ThrownRockEffect = Effect{Kind: EffectThrownRock, Power: 2, Range: ThrowRange}
	ArrowEffect      = Effect{Kind: EffectArrow, Power: 3, Range: 6}
)
