package alloc

import (
	"log/slog"
	"os"
)

// Runtime trace flag for allocation logging, controlled by BLOCKALLOC_LOG_ALLOC.
var logAlloc = os.Getenv("BLOCKALLOC_LOG_ALLOC") != ""

func defaultLogger() *slog.Logger {
	if !logAlloc {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
