package serviceutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Returns a context that will live until Ctrl+C is pressed
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

var exit = os.Exit

// Fatal logs the error to the default logger and exits with status 1.
func Fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	exit(1)
}
