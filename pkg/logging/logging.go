// Package logging builds the application logger with a zap output sink.
package logging

import (
	"github.com/Gobusters/ectologger"
	"go.uber.org/zap"
)

// New creates the application logger. Pretty switches zap to its development
// console encoder for local runs; production uses JSON.
func New(appName string, pretty bool) (ectologger.Logger, error) {
	var zlog *zap.Logger
	var err error
	if pretty {
		zlog, err = zap.NewDevelopment()
	} else {
		zlog, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	zlog = zlog.With(zap.String("app", appName))

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		zlog.Info("log", zap.Any("entry", msg))
	})

	return logger, nil
}
