package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// AccessLogger records the request lifecycle in controllers and usecases.
	AccessLogger *zap.Logger
	// DBLogger records repository activity.
	DBLogger *zap.Logger
)

func build(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path, "stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func InitLoggers() error {
	var err error
	AccessLogger, err = build("access.log")
	if err != nil {
		return err
	}
	DBLogger, err = build("db.log")
	return err
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
