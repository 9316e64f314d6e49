package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *zap.Logger

// InitLogger sets up the global zap logger. When LOG_FILE is configured the
// output is rotated with lumberjack, otherwise logs go to stderr.
func InitLogger() {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if AppConfig != nil && AppConfig.AppEnv != "production" {
		level = zapcore.DebugLevel
	}

	var sink zapcore.WriteSyncer
	if AppConfig != nil && AppConfig.LogFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   AppConfig.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	Logger = zap.New(core, zap.AddCaller())
}

func SyncLogger() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
