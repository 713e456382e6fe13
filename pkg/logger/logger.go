package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stdout с настройками logrus по умолчанию.
var Log = logrus.New()

// logFile — открытый файл лога, если LOG_FILE задан.
var logFile *os.File

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Log = logrus.New()

	// 1. Устанавливаем уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Устанавливаем форматтер.
	// "json" - для сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   os.Getenv("LOG_FILE") == "",
		})
	}

	// 3. Устанавливаем, куда писать логи.
	// Терминальный клиент занимает stdout целиком, поэтому ему нужен LOG_FILE.
	Log.SetOutput(os.Stdout)
	if path := os.Getenv("LOG_FILE"); path != "" {
		if err := SetFile(path); err != nil {
			Log.WithError(err).Warn("Falling back to stdout logging.")
		}
	}
}

// SetFile перенаправляет лог в файл (дописывая в конец).
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", path, err)
	}
	Close()
	logFile = f
	Log.SetOutput(f)
	return nil
}

// SetOutput перенаправляет лог в произвольный writer (удобно в тестах).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// Close закрывает файл лога, если он был открыт.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
