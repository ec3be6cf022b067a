package main

import (
	"errors"
	"log/slog"
	"time"
)

type commandHandler func(line string) error

type commandMiddleware func(next commandHandler) commandHandler

func withLogging(logger *slog.Logger) commandMiddleware {
	return func(next commandHandler) commandHandler {
		return func(line string) error {
			start := time.Now()
			err := next(line)
			attrs := []any{
				slog.String("command", line),
				slog.Any("duration (µs)", int64(time.Since(start)/time.Microsecond)),
			}
			if err != nil && !errors.Is(err, errQuit) {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.Debug("handled command", attrs...)
			return err
		}
	}
}
