package logx

import (
	"go.uber.org/zap"
)

var L *zap.Logger

func Init(env string) {
	cfg := zap.NewProductionConfig()

	// Local dev readability
	if env != "prod" {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	L = logger
}

func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
