package app

import (
	"go.uber.org/zap"
)

// NewLogger builds a production logger in production and a development logger
// otherwise, at cfg's level. Output goes to stderr so command output stays clean.
func NewLogger(cfg Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if cfg.Environment == Production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
