package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID выдает идентификатор сессии: 24 hex-символа из
// криптослучайного источника. Не UUID, чтобы не тянуть зависимость
// ради одной строки; сравнивается и логируется как обычная строка.
func GenerateID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// Источник энтропии ОС отказал. Уникальности таймстампа
		// хватает: идентификаторы выдаются из одного процесса.
		return fmt.Sprintf("t%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
