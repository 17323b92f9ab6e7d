package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте в main.go и в TestMain пакетов.
// Настраивается существующий экземпляр: пакеты держат на него ссылки.
func Init() {
	// 1. Уровень из LOG_LEVEL, по умолчанию "info".
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" для сбора логов, иначе цветной текст.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Пишем в stdout.
	Log.SetOutput(os.Stdout)
}

// RedirectToFile уводит логи в файл. Нужен терминальному клиенту:
// вывод в stdout испортил бы экран tcell. Пустой путь глушит логи.
func RedirectToFile(path string) (io.Closer, error) {
	if path == "" {
		Log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Log.SetOutput(f)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return f, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
