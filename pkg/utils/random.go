package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	mrand "math/rand"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() domain.ActorID {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return domain.ActorID(hex.EncodeToString(b))
}

// StringToSeed превращает строку (имя игрока) в детерминированный сид.
// Live-режим и реплей получают одинаковые розыгрыши для одного имени.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// NewRNG создает локальный генератор. Глобального math/rand в проекте нет:
// каждый розыгрыш идет через явно переданный *rand.Rand,
// иначе реплеи перестают сходиться.
func NewRNG(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}
