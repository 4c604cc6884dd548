package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm's SQL logging through logrus.
func GormLogger(log *logrus.Logger, level string) (gormlogger.Interface, error) {
	var lvl gormlogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		lvl = gormlogger.Silent
	case "error":
		lvl = gormlogger.Error
	case "warn", "":
		lvl = gormlogger.Warn
	case "info":
		lvl = gormlogger.Info
	default:
		return nil, fmt.Errorf("invalid database log level %q", level)
	}

	return gormlogger.New(log.WithField("component", "gorm"), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}
