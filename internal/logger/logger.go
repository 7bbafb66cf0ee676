// Package logger provides the zap-based application logger.
package logger

import "go.uber.org/zap"

// New configures a production logger. It panics on failure because
// nothing useful can run without logging.
func New() *zap.Logger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}
