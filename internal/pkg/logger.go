package pkg

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// InitLogger level: debug/info/warn/error
func InitLogger(level string) error {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l.Sugar()
	return nil
}

func init() {
	// 未显式初始化时兜底，避免空指针
	l, _ := zap.NewProduction()
	Logger = l.Sugar()
}
