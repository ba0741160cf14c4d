package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — глобальный логгер приложения. Подсистемы навешивают на него
// свои поля: logger.Log.WithField("component", "...").
//
// Инициализирован сразу, чтобы пакетные init и тесты без Init не
// падали на nil. Init в main дочитывает настройки окружения.
var Log = logrus.New()

// Init настраивает глобальный логгер по переменным окружения.
// Вызывается один раз на старте процесса.
//
//	LOG_LEVEL  - trace|debug|info|warn|error, по умолчанию info
//	LOG_FORMAT - json для сбора логов, иначе текст с таймстампами
func Init() {
	Log.SetLevel(levelFromEnv())
	Log.SetOutput(os.Stdout)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}

func levelFromEnv() logrus.Level {
	raw, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		// Опечатка в окружении не повод молчать совсем
		return logrus.InfoLevel
	}
	return level
}
