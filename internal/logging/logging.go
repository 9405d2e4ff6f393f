package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the service logger and points the logrus standard
// logger at the same format and level.
func SetupLogging(level logrus.Level) *logrus.Logger {
	formatter := &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       os.Stdout,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  os.Exit,
	}

	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)

	return &logger
}
