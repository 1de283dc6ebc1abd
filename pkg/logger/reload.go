package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
)

type Reloader interface {
	Reload() error
}

// ReloadOnSignal reopens the log file every time a signal arrives on signals, until ctx is done.
// It is meant to be fed SIGHUP from logrotate.
func ReloadOnSignal(ctx context.Context, r Reloader, log *zap.Logger, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			log.Info("received signal, reloading log file", zap.String("signal", sig.String()))
			if err := r.Reload(); err != nil {
				log.Error("failed to reload log file", zap.Error(err))
				continue
			}
			log.Info("successfully reloaded log file")
		}
	}
}
