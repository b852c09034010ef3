package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with a rotating file writer. LOG_DIR overrides
// where the file lands, defaulting to ./logs next to the binary. Setting
// LOG_DIR=stderr skips the file entirely so container deployments can log
// to the console.
func Setup() {
	dir := os.Getenv("LOG_DIR")
	if dir == "stderr" {
		configureFormatter()
		return
	}
	if dir == "" {
		dir = "./logs"
	}

	// Lumberjack handles rotation; logrus just writes
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "standfindr.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	configureFormatter()
}

func configureFormatter() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(logrus.InfoLevel)
}

// GormLogger returns the standard Logrus logger, which satisfies the Printf
// writer GORM's logger wants. Wired into gorm.Config by config.InitDB.
func GormLogger() *logrus.Logger {
	return logrus.StandardLogger()
}
