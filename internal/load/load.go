package load

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sink is one persistence destination.
type Sink struct {
	Name string
	Save func(ctx context.Context) error
}

// SaveAll attempts every sink even when an earlier one fails, and returns
// the failures joined together.
func SaveAll(ctx context.Context, sinks ...Sink) error {
	var errs []error
	for _, sink := range sinks {
		err := sink.Save(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "sink failed", "sink", sink.Name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name, err))
			continue
		}
		slog.DebugContext(ctx, "sink saved", "sink", sink.Name)
	}
	return errors.Join(errs...)
}
